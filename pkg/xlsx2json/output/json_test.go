package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/xlsx2json-go/pkg/xlsx2json/models"
)

func TestToJSON(t *testing.T) {
	wb := models.NewWorkbook("book.xlsx")
	wb.Set("Sheet1", models.Sheet{
		Columns: []string{"id", "name"},
		Data: [][]models.Value{
			{models.Int(1), models.Text("Alice")},
			{models.Int(2), models.Absent()},
		},
	})
	wb.Set("빈 시트", models.Sheet{})

	got, err := ToJSON(wb)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	expected := `{
  "Sheet1": {
    "columns": [
      "id",
      "name"
    ],
    "data": [
      [
        1,
        "Alice"
      ],
      [
        2,
        null
      ]
    ]
  },
  "빈 시트": {
    "columns": [],
    "data": []
  }
}`
	if string(got) != expected {
		t.Errorf("got:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestToJSONUnicodeVerbatim(t *testing.T) {
	wb := models.NewWorkbook("")
	wb.Set("황금경로", models.Sheet{
		Columns: []string{"항구 <이름>"},
		Data:    [][]models.Value{{models.Text("리스본 & 세비야")}},
	})

	got, err := ToJSON(wb)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	for _, want := range []string{"황금경로", "항구 <이름>", "리스본 & 세비야"} {
		if !strings.Contains(string(got), want) {
			t.Errorf("expected output to contain %q verbatim, got:\n%s", want, got)
		}
	}
	if strings.Contains(string(got), `\u`) {
		t.Errorf("expected no unicode escapes, got:\n%s", got)
	}
}

func TestToJSONEmptyWorkbook(t *testing.T) {
	got, err := ToJSON(models.NewWorkbook(""))
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("expected {}, got %s", got)
	}
}

func TestMarshal(t *testing.T) {
	got, err := Marshal(map[string]interface{}{"rate": 3.14, "tag": "a&b"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := "{\n  \"rate\": 3.14,\n  \"tag\": \"a&b\"\n}"
	if string(got) != expected {
		t.Errorf("got:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("{}")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("expected {}, got %q", got)
	}
}
