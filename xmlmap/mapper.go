package xmlmap

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/formbridge/json-to-xml/jsontree"
)

// ToXML maps a JSON value tree to a pretty-printed XML document under the
// given root element name.
func ToXML(v jsontree.Value, rootName string) (string, error) {
	b := builder{}
	return prettyPrint(b.document(v, rootName))
}

// ToXMLSubstituted is the character-substituting variant used by the DOCX
// pipeline. If the input is a single-element array holding a single-key
// object whose sole value is an XML-declaration string, that string is
// returned (substituted) verbatim instead of mapping the tree. Blank lines
// are stripped from the pretty-printed output.
func ToXMLSubstituted(v jsontree.Value, rootName string) (string, error) {
	if raw, ok := passthroughXML(v); ok {
		return Substitute(raw), nil
	}
	b := builder{substitute: true}
	out, err := prettyPrint(b.document(v, rootName))
	if err != nil {
		return "", err
	}
	return stripBlankLines(out), nil
}

// passthroughXML detects the narrow escape-hatch shape: [{"key": "<?xml...>"}].
// The match is deliberately exact; it is not generalized.
func passthroughXML(v jsontree.Value) (string, bool) {
	if v.Kind != jsontree.Array || len(v.Items) != 1 {
		return "", false
	}
	obj := v.Items[0]
	if obj.Kind != jsontree.Object || len(obj.Members) != 1 {
		return "", false
	}
	val := obj.Members[0].Value
	if val.Kind != jsontree.String {
		return "", false
	}
	s := strings.TrimSpace(val.Str)
	if strings.HasPrefix(s, "<?xml") && strings.HasSuffix(s, ">") {
		return s, true
	}
	return "", false
}

type builder struct {
	substitute bool
}

func (b builder) name(key string) string {
	if b.substitute {
		key = Substitute(key)
	}
	return SanitizeName(key)
}

func (b builder) text(v jsontree.Value) string {
	t := v.Text()
	if b.substitute {
		t = Substitute(t)
	}
	return t
}

// document builds the element tree. Construction is pure: every call creates
// new elements and nothing is mutated afterwards.
func (b builder) document(v jsontree.Value, rootName string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(b.name(rootName))
	switch v.Kind {
	case jsontree.Object:
		for _, m := range v.Members {
			b.appendValue(root, m.Key, m.Value)
		}
	case jsontree.Array:
		for i, item := range v.Items {
			b.appendValue(root, "item_"+strconv.Itoa(i), item)
		}
	default:
		setText(root, b.text(v))
	}
	return doc
}

// setText leaves empty text unset so childless elements serialize in
// self-closing form and re-parsing then printing reproduces the same bytes.
func setText(el *etree.Element, text string) {
	if text != "" {
		el.SetText(text)
	}
}

func (b builder) appendValue(parent *etree.Element, key string, v jsontree.Value) {
	switch v.Kind {
	case jsontree.Object:
		el := parent.CreateElement(b.name(key))
		for _, m := range v.Members {
			b.appendValue(el, m.Key, m.Value)
		}
	case jsontree.Array:
		// One sibling per element, all named after the array's key.
		for _, item := range v.Items {
			if item.Kind == jsontree.Object {
				el := parent.CreateElement(b.name(key))
				for _, m := range item.Members {
					b.appendValue(el, m.Key, m.Value)
				}
			} else {
				el := parent.CreateElement(b.name(key))
				setText(el, b.text(item))
			}
		}
	default:
		el := parent.CreateElement(b.name(key))
		setText(el, b.text(v))
	}
}
