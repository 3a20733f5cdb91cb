package jsonxml

import (
	"log"
	"net/http"

	"github.com/formbridge/json-to-xml/config"
	"github.com/formbridge/json-to-xml/docrender"
	"github.com/formbridge/json-to-xml/docx"
	"github.com/formbridge/json-to-xml/jsontree"
	"github.com/formbridge/json-to-xml/xmlmap"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func handleConvertJSONToDocx(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	content, base, err := readJSONUpload(w, r)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	value, err := parseUploadJSON(content)
	if err != nil {
		log.Printf("JSON parsing error: %v", err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	buf, err := ConvertToDocx(value, config.Config.Convert.DefaultRootElement)
	if err != nil {
		log.Printf("DOCX conversion error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+base+".docx")
	_, _ = w.Write(buf)
}

// ConvertToDocx runs the full second pipeline: substituted XML mapping,
// document rendering (with its raw-text fallback), and DOCX packaging.
func ConvertToDocx(value jsontree.Value, rootName string) ([]byte, error) {
	xmlStr, err := xmlmap.ToXMLSubstituted(value, rootName)
	if err != nil {
		return nil, &ConversionError{Msg: "Error converting JSON to XML: " + err.Error()}
	}
	paras := docrender.Render(xmlStr)
	out := make([]docx.Paragraph, len(paras))
	for i, p := range paras {
		out[i] = docx.Paragraph{Text: p.Text, Heading: p.Heading}
	}
	buf, err := docx.Marshal(out)
	if err != nil {
		return nil, &ConversionError{Msg: "Error building DOCX document: " + err.Error()}
	}
	return buf, nil
}

func handleDocxServiceRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, apiInfoResponse{
		Message:     "JSON to DOCX Converter API",
		Version:     "1.0.0",
		Endpoint:    "/convert-json-to-docx/",
		Description: "Convert JSON binary files to DOCX documents",
		Usage:       "POST /convert-json-to-docx/ with JSON file in form-data",
	})
}
