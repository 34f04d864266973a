// Package xlsx2json converts Excel workbooks into a single JSON document.
package xlsx2json

import "github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/parser"

// Options configures conversion behavior.
type Options struct {
	// RoundNumbers rounds every numeric data cell to an integer before
	// serialization.
	RoundNumbers bool
	// NAValues lists text cell contents treated as missing.
	// If nil, parser.DefaultNAValues is used. An empty non-nil slice
	// keeps all text.
	NAValues []string
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) naValues() []string {
	if o.NAValues == nil {
		return parser.DefaultNAValues
	}
	return o.NAValues
}
