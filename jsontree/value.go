package jsontree

// Kind identifies which JSON kind a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// Member is a single key/value entry of a JSON object, in document order.
type Member struct {
	Key   string
	Value Value
}

// Value is one parsed JSON value. Exactly the fields for its Kind are set;
// Raw always carries the original JSON literal. Values are never mutated
// after Parse returns.
type Value struct {
	Kind    Kind
	Str     string
	Bool    bool
	Raw     string
	Items   []Value
	Members []Member
}

// Text returns the textual form of a value when it appears as XML element
// text: the string itself, the raw number literal, True/False for booleans,
// the empty string for null. Composite values fall back to their compact
// JSON literal.
func (v Value) Text() string {
	switch v.Kind {
	case Null:
		return ""
	case Bool:
		if v.Bool {
			return "True"
		}
		return "False"
	case String:
		return v.Str
	default:
		return v.Raw
	}
}
