// Package docx writes a minimal WordprocessingML (.docx) package.
//
// A .docx file is a zip archive of OOXML parts. This writer emits just the
// parts Word needs to open a flat paragraph document: content types, package
// relationships, word/document.xml and a small styles part defining the
// Title and Normal styles.
package docx
