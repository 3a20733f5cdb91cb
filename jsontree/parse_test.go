package jsontree

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_ObjectKeepsDocumentOrder(t *testing.T) {
	v, err := Parse([]byte(`{"b": 1, "a": 2, "c": 3}`), 0)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.Kind != Object {
		t.Fatalf("expected Object, got %v", v.Kind)
	}
	got := make([]string, 0, len(v.Members))
	for _, m := range v.Members {
		got = append(got, m.Key)
	}
	want := []string{"b", "a", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("member order = %v, want %v", got, want)
	}
}

func TestParse_AcceptsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"a": 1}`)...)
	v, err := Parse(data, 0)
	if err != nil {
		t.Fatalf("Parse with BOM failed: %v", err)
	}
	if v.Kind != Object || len(v.Members) != 1 {
		t.Errorf("unexpected value: %+v", v)
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	_, err := Parse([]byte{'"', 0xFF, 0xFE, '"'}, 0)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	cases := []string{
		`{"a": }`,
		`[1, 2,]`,
		`not json`,
		``,
	}
	for _, input := range cases {
		_, err := Parse([]byte(input), 0)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%q): expected ParseError, got %v", input, err)
			continue
		}
		if parseErr.Msg == "" {
			t.Errorf("Parse(%q): diagnostic message is empty", input)
		}
	}
}

func TestParse_DepthLimit(t *testing.T) {
	deep := strings.Repeat("[", 50) + strings.Repeat("]", 50)
	if _, err := Parse([]byte(deep), 100); err != nil {
		t.Fatalf("depth 50 under limit 100 should parse: %v", err)
	}
	_, err := Parse([]byte(deep), 10)
	var depthErr *DepthLimitError
	if !errors.As(err, &depthErr) {
		t.Fatalf("expected DepthLimitError, got %v", err)
	}
	if !strings.Contains(err.Error(), "10") {
		t.Errorf("error should name the limit: %v", err)
	}
}

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  int
		want  string
	}{
		{"number int", `[1]`, 0, "1"},
		{"number float", `[1.5]`, 0, "1.5"},
		{"string", `["hi"]`, 0, "hi"},
		{"bool true", `[true]`, 0, "True"},
		{"bool false", `[false]`, 0, "False"},
		{"null", `[null]`, 0, ""},
		{"nested array literal", `[[1, 2]]`, 0, "[1, 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input), 0)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := v.Items[tt.path].Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
