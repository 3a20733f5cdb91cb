package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestMarshal_PackageParts(t *testing.T) {
	data, err := Marshal([]Paragraph{{Text: "Title line", Heading: true}, {Text: "body"}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/document.xml",
	} {
		_ = readPart(t, data, name)
	}
	doc := readPart(t, data, "word/document.xml")
	if !strings.Contains(doc, `<w:pStyle w:val="Title"/>`) {
		t.Error("heading paragraph should carry the Title style")
	}
	if !strings.Contains(doc, `<w:t xml:space="preserve">body</w:t>`) {
		t.Error("body paragraph text missing")
	}
}

func TestMarshal_EscapesText(t *testing.T) {
	data, err := Marshal([]Paragraph{{Text: `<a attr="v"> & more`}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")
	if !strings.Contains(doc, "&lt;a attr=&quot;v&quot;&gt; &amp; more") {
		t.Errorf("text not escaped in document.xml:\n%s", doc)
	}
}

func TestMarshal_NoParagraphs(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")
	if !strings.Contains(doc, "<w:body>") {
		t.Error("document body missing")
	}
}
