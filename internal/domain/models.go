package domain

// UploadedDocument is the canonical form of an inbound payload after
// normalization: raw bytes plus a resolved filename and MIME type.
type UploadedDocument struct {
	Bytes       []byte
	Filename    string
	ContentType string
	FileType    FileType
}

// UpstreamResult carries one upstream OCR response in opaque form.
// StructuredFields is populated only when the body was a JSON object;
// RawText holds the recognized text if the upstream supplied any.
type UpstreamResult struct {
	StatusCode       int
	RawText          string
	StructuredFields map[string]interface{}
	RawBody          []byte
	ContentType      string
}

// Success reports whether the upstream answered with a 2xx status.
func (r *UpstreamResult) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
