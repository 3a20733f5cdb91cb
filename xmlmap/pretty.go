package xmlmap

import (
	"strings"

	"github.com/beevik/etree"
)

// prettyPrint serializes a document with 2-space indentation. Re-parsing the
// output yields a tree isomorphic to the input, and printing that tree again
// reproduces the same string.
func prettyPrint(doc *etree.Document) (string, error) {
	doc.Indent(2)
	return doc.WriteToString()
}

func stripBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n") + "\n"
}
