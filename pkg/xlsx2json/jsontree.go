package xlsx2json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// member is one key/value pair of a JSON object.
type member struct {
	key   string
	value interface{}
}

// object is a JSON object that keeps its keys in document order.
type object []member

// MarshalJSON implements json.Marshaler.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(m.key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(m.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeTree parses a single JSON document into nested object, []interface{},
// json.Number, string, bool and nil values.
func decodeTree(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected object key, got %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, member{key: key, value: value})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []interface{}{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}

// roundTree rounds every non-integral number in v to the nearest integer,
// halves rounding up. It returns the new tree and whether any value changed.
func roundTree(v interface{}) (interface{}, bool) {
	switch x := v.(type) {
	case object:
		changed := false
		for i := range x {
			var c bool
			x[i].value, c = roundTree(x[i].value)
			changed = changed || c
		}
		return x, changed
	case []interface{}:
		changed := false
		for i := range x {
			var c bool
			x[i], c = roundTree(x[i])
			changed = changed || c
		}
		return x, changed
	case json.Number:
		return roundNumber(x)
	}
	return v, false
}

func roundNumber(n json.Number) (json.Number, bool) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return n, false
	}
	f, err := n.Float64()
	if err != nil {
		return n, false
	}
	r := math.Floor(f + 0.5)
	return json.Number(strconv.FormatFloat(r, 'f', -1, 64)), r != f
}

// repairNaN replaces bare NaN and -NaN tokens outside string literals with
// null. Documents that already parse are returned untouched.
func repairNaN(data []byte) ([]byte, bool) {
	if json.Valid(data) {
		return data, false
	}

	var out bytes.Buffer
	out.Grow(len(data))
	repaired := false
	inString, escaped := false, false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			out.WriteByte(c)
			continue
		}
		if c == '"' {
			inString = true
			out.WriteByte(c)
			continue
		}
		if n := nanTokenLen(data[i:]); n > 0 {
			out.WriteString("null")
			i += n - 1
			repaired = true
			continue
		}
		out.WriteByte(c)
	}
	return out.Bytes(), repaired
}

func nanTokenLen(b []byte) int {
	for _, tok := range []string{"-NaN", "NaN"} {
		if bytes.HasPrefix(b, []byte(tok)) {
			return len(tok)
		}
	}
	return 0
}
