package coral

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// boundaryPrefix is the fixed literal the per-request multipart
// boundary token starts with.
const boundaryPrefix = "Boundary-"

const contentTypeJSON = "application/json"

// newBoundary returns a boundary token unique to one request.
func newBoundary() string {
	return boundaryPrefix + uuid.NewString()
}

// encodeBody turns a body task into a Content-Type header value and a
// byte payload. A nil task yields neither. A value that cannot be
// serialized fails the call with ErrJSONConversion rather than
// silently sending no body.
func encodeBody(task Task) (contentType string, body []byte, err error) {
	switch t := task.(type) {
	case nil:
		return "", nil, nil
	case JSONTask:
		payload, err := json.Marshal(t.Value)
		if err != nil {
			return "", nil, &APIError{
				Detail: "encoding request payload",
				Err:    fmt.Errorf("%w: %w", ErrJSONConversion, err),
			}
		}
		return contentTypeJSON, payload, nil
	case MultipartTask:
		boundary := newBoundary()
		payload, err := encodeMultipart(t.Parts, boundary)
		if err != nil {
			return "", nil, err
		}
		return "multipart/form-data; boundary=" + boundary, payload, nil
	default:
		return "", nil, fmt.Errorf("unsupported body task %T", task)
	}
}

// encodeMultipart writes the multipart/form-data payload for parts in
// order. The output is byte-identical for the same part list and
// boundary token; servers can be order-sensitive, so part order is
// never reshuffled.
func encodeMultipart(parts []MultipartPart, boundary string) ([]byte, error) {
	var buf bytes.Buffer
	for i, p := range parts {
		if err := Validate(p); err != nil {
			return nil, fmt.Errorf("multipart part %d: %w", i, err)
		}

		buf.WriteString("--" + boundary + "\r\n")
		buf.WriteString(`Content-Disposition: form-data; name="` + p.Name + `"`)
		if p.FileName != "" {
			buf.WriteString(`; filename="` + p.FileName + `"`)
		}
		buf.WriteString("\r\n\r\n")
		buf.WriteString("Content-Type: " + p.MimeType + "\r\n\r\n")
		buf.Write(p.Data)
		buf.WriteString("\r\n")
	}
	buf.WriteString("--" + boundary + "--\r\n")

	return buf.Bytes(), nil
}
