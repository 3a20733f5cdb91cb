package docrender

import (
	"strings"

	"github.com/beevik/etree"
)

// HeadingText is the document title paragraph for well-formed XML.
const HeadingText = "Converted XML Document"

// RawMarker precedes the literal fallback rendering of unparseable input.
const RawMarker = "Raw XML Content"

// Paragraph is one visual document paragraph.
type Paragraph struct {
	Text    string
	Heading bool
}

// Render converts an XML string to paragraphs. It never fails: unparseable
// input falls back to literal line-by-line rendering.
func Render(xmlStr string) []Paragraph {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlStr); err != nil || doc.Root() == nil {
		return renderRaw(xmlStr)
	}
	paras := []Paragraph{{Text: HeadingText, Heading: true}}
	return renderElement(paras, doc.Root(), 0)
}

func renderRaw(s string) []Paragraph {
	paras := []Paragraph{{Text: RawMarker, Heading: true}}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			paras = append(paras, Paragraph{Text: line})
		}
	}
	return paras
}

func renderElement(paras []Paragraph, el *etree.Element, depth int) []Paragraph {
	indent := strings.Repeat("  ", depth)
	tag := openTag(el)
	text := strings.TrimSpace(el.Text())
	children := el.ChildElements()
	switch {
	case text != "" && len(children) == 0:
		paras = append(paras, Paragraph{Text: indent + "<" + tag + ">" + text + "</" + el.FullTag() + ">"})
	case len(children) == 0:
		paras = append(paras, Paragraph{Text: indent + "<" + tag + "/>"})
	default:
		paras = append(paras, Paragraph{Text: indent + "<" + tag + ">"})
		for _, child := range children {
			paras = renderElement(paras, child, depth+1)
		}
		paras = append(paras, Paragraph{Text: indent + "</" + el.FullTag() + ">"})
	}
	return paras
}

func openTag(el *etree.Element) string {
	var b strings.Builder
	b.WriteString(el.FullTag())
	for _, attr := range el.Attr {
		b.WriteString(" ")
		b.WriteString(attr.FullKey())
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteString(`"`)
	}
	return b.String()
}
