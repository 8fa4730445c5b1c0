package lead

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// maxFormMemory bounds in-memory multipart parsing; larger parts spill to disk.
const maxFormMemory = 10 << 20

// DecodeFields turns an incoming request into a field mapping regardless of
// whether the client sent JSON, url-encoded, or multipart form data.
//
// Decoding never fails: a malformed body degrades to an empty mapping, which
// the pipeline rejects as missing fields. JSON scalars (numbers, booleans)
// are stringified; nested objects and arrays are ignored.
func DecodeFields(r *http.Request) Fields {
	if mediaType(r.Header.Get("Content-Type")) == "application/json" {
		return decodeJSONFields(r)
	}
	return decodeFormFields(r)
}

// mediaType extracts the media type from a Content-Type header, dropping
// parameters such as charset or boundary.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func decodeJSONFields(r *http.Request) Fields {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return Fields{}
	}

	fields := make(Fields, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case float64, bool:
			fields[k] = fmt.Sprint(val)
		case nil:
			// Absent is absent.
		default:
			// Nested objects and arrays carry no form semantics.
		}
	}
	return fields
}

func decodeFormFields(r *http.Request) Fields {
	if strings.HasPrefix(mediaType(r.Header.Get("Content-Type")), "multipart/") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return Fields{}
		}
	} else if err := r.ParseForm(); err != nil {
		return Fields{}
	}

	fields := make(Fields, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			fields[k] = vs[0]
		}
	}
	return fields
}
