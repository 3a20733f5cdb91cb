package jsonxml

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/formbridge/json-to-xml/config"
	"github.com/formbridge/json-to-xml/jsontree"
)

// readJSONUpload extracts the uploaded JSON file from a multipart form and
// returns its bytes plus the filename base (without extension).
func readJSONUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, config.Config.Limits.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", &InvalidInputError{Msg: "Missing file upload field 'file'"}
	}
	defer func() { _ = file.Close() }()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".json") {
		return nil, "", &InvalidInputError{Msg: "File must be a JSON file"}
	}
	switch ct := header.Header.Get("Content-Type"); ct {
	case "", "application/json", "text/json", "application/octet-stream":
	default:
		log.Printf("unexpected content type: %s", ct)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, "", &InvalidInputError{Msg: "Failed to read uploaded file: " + err.Error()}
	}
	if len(content) == 0 {
		return nil, "", &InvalidInputError{Msg: "Empty file uploaded"}
	}

	base := header.Filename
	if idx := strings.LastIndex(base, "."); idx != -1 {
		base = base[:idx]
	}
	return content, base, nil
}

// parseUploadJSON parses upload bytes into a value tree, translating parser
// errors into the client-facing taxonomy.
func parseUploadJSON(content []byte) (jsontree.Value, error) {
	v, err := jsontree.Parse(content, config.Config.Limits.MaxDepth)
	if err == nil {
		return v, nil
	}
	var decodeErr *jsontree.DecodeError
	if errors.As(err, &decodeErr) {
		return jsontree.Value{}, &InvalidInputError{Msg: "Invalid file encoding. Please use UTF-8 encoded JSON file"}
	}
	var depthErr *jsontree.DepthLimitError
	if errors.As(err, &depthErr) {
		return jsontree.Value{}, &InvalidInputError{Msg: err.Error()}
	}
	return jsontree.Value{}, &MalformedJSONError{Msg: "Invalid JSON format: " + err.Error()}
}
