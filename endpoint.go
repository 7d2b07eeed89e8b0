package coral

// Endpoint describes one logical HTTP call. Implementations should be
// immutable value types; a Client never mutates or retains them.
type Endpoint interface {
	// BaseURL is the absolute origin, e.g. "https://api.example.com".
	BaseURL() string
	// Path is appended to BaseURL with path-component semantics.
	Path() string
	// Method is the HTTP verb (GET, POST, PUT, DELETE).
	Method() string
	// Headers are request headers, keys taken verbatim. May be nil.
	Headers() map[string]string
	// QueryParams are attached as URL query items. Order is not
	// significant. May be nil.
	QueryParams() map[string]string
	// Task is the optional request body. Nil means no body.
	Task() Task
}

// Task is the request body union. An endpoint carries at most one
// task: either a JSON-encodable value or an ordered multipart form.
type Task interface {
	isTask()
}

// JSONTask serializes Value as the JSON request body.
type JSONTask struct {
	Value any
}

func (JSONTask) isTask() {}

// MultipartTask encodes Parts as a multipart/form-data body. Part
// order is preserved on the wire.
type MultipartTask struct {
	Parts []MultipartPart
}

func (MultipartTask) isTask() {}

// MultipartPart is one section of a multipart form body.
type MultipartPart struct {
	Name     string `json:"name" validate:"required"`
	FileName string `json:"fileName"`
	Data     []byte `json:"-"`
	MimeType string `json:"mimeType" validate:"required"`
}

// Descriptor is a ready-made Endpoint for callers that don't define
// their own catalog type.
type Descriptor struct {
	Base   string
	Route  string
	Verb   string
	Header map[string]string
	Query  map[string]string
	Body   Task
}

func (d Descriptor) BaseURL() string                { return d.Base }
func (d Descriptor) Path() string                   { return d.Route }
func (d Descriptor) Method() string                 { return d.Verb }
func (d Descriptor) Headers() map[string]string     { return d.Header }
func (d Descriptor) QueryParams() map[string]string { return d.Query }
func (d Descriptor) Task() Task                     { return d.Body }
