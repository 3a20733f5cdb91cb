package jsontree

import "strconv"

// DecodeError reports content that is not valid UTF-8 text.
type DecodeError struct{ Msg string }

func (e *DecodeError) Error() string { return e.Msg }

// ParseError reports malformed JSON syntax, echoing the parser diagnostic.
type ParseError struct{ Msg string }

func (e *ParseError) Error() string { return e.Msg }

// DepthLimitError reports a document nested deeper than the configured bound.
type DepthLimitError struct{ Max int }

func (e *DepthLimitError) Error() string {
	return "JSON nesting depth exceeds limit of " + strconv.Itoa(e.Max)
}
