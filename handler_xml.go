package jsonxml

import (
	"log"
	"net/http"

	"github.com/formbridge/json-to-xml/config"
	"github.com/formbridge/json-to-xml/xmlmap"
)

func handleConvertJSONToXML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	content, base, err := readJSONUpload(w, r)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	rootName := r.FormValue("root_element")
	if rootName == "" {
		rootName = config.Config.Convert.DefaultRootElement
	}
	value, err := parseUploadJSON(content)
	if err != nil {
		log.Printf("JSON parsing error: %v", err)
		writeError(w, statusFor(err), err.Error())
		return
	}
	xmlStr, err := xmlmap.ToXML(value, rootName)
	if err != nil {
		log.Printf("XML conversion error: %v", err)
		writeError(w, http.StatusInternalServerError, "Error converting JSON to XML: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+base+".xml")
	_, _ = w.Write([]byte(xmlStr))
}

type apiInfoResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Endpoint    string `json:"endpoint"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

func handleXMLServiceRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, apiInfoResponse{
		Message:     "JSON to XML Converter API",
		Version:     "1.0.0",
		Endpoint:    "/convert-json-to-xml",
		Description: "Convert JSON binary files to XML binary files",
		Usage:       "POST /convert-json-to-xml with JSON file in form-data",
	})
}
