// Package docrender turns an XML string into a flat sequence of document
// paragraphs for the DOCX download service.
//
// Well-formed input renders as one indented tag line per element under a
// fixed heading. Input that does not parse as XML is never an error: it
// degrades to rendering each non-blank line literally behind a "Raw XML
// Content" marker, so a malformed intermediate document can still be
// delivered to the caller.
package docrender
