// Package xmlmap converts a parsed JSON value tree into pretty-printed XML.
//
// Two mappings are provided. ToXML is the plain mapping used by the XML
// download service. ToXMLSubstituted additionally rewrites characters in
// element names and scalar text (underscore to colon, dollar to at-sign) and
// honors a passthrough form that lets callers tunnel a pre-formed XML string
// through the JSON transport; it feeds the document rendering service.
//
// Repeated sibling tag names are intentional: arrays map to one sibling per
// element, named after the array's own key, with no index markers.
package xmlmap
