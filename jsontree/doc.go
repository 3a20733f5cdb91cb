// Package jsontree parses uploaded JSON documents into an ordered value tree.
//
// The tree is a closed variant type over the six JSON kinds. Object members
// keep their document order, which the XML mapper depends on. Parsing is
// bounded by a configurable nesting depth so adversarial inputs fail with a
// clear error instead of exhausting the stack.
package jsontree
