package xmlmap

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestPrettyPrint_HasDeclarationAndIndent(t *testing.T) {
	out, err := ToXML(mustParse(t, `{"a": {"b": 1}}`), "root")
	if err != nil {
		t.Fatalf("ToXML failed: %v", err)
	}
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("output missing XML declaration:\n%s", out)
	}
	if !strings.Contains(out, "\n    <b>") {
		t.Errorf("expected 4-space indent at depth 2:\n%s", out)
	}
}

func TestPrettyPrint_Fixpoint(t *testing.T) {
	out, err := ToXML(mustParse(t, `{"a": 1, "b": {"c": [1, 2], "d": null}}`), "root")
	if err != nil {
		t.Fatalf("ToXML failed: %v", err)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	again, err := prettyPrint(doc)
	if err != nil {
		t.Fatalf("prettyPrint failed: %v", err)
	}
	if again != out {
		t.Errorf("pretty-printing is not a fixpoint:\nfirst:\n%s\nsecond:\n%s", out, again)
	}
}

func TestStripBlankLines(t *testing.T) {
	in := "<a>\n\n  <b/>\n   \n</a>\n"
	want := "<a>\n  <b/>\n</a>\n"
	if got := stripBlankLines(in); got != want {
		t.Errorf("stripBlankLines = %q, want %q", got, want)
	}
}

func TestToXMLSubstituted_NoBlankLines(t *testing.T) {
	out, err := ToXMLSubstituted(mustParse(t, `{"a": {"b": 1}}`), "root")
	if err != nil {
		t.Fatalf("ToXMLSubstituted failed: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			t.Errorf("blank line in substituted output:\n%s", out)
		}
	}
}
