package domain

import "regexp"

// FileType represents the supported document types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// UploadFilenames maps FileType to the synthesized filename used when the
// caller sent a raw body with no file part of its own.
var UploadFilenames = map[FileType]string{
	FileTypePDF: "uploaded.pdf",
	FileTypeJPG: "uploaded.jpg",
	FileTypePNG: "uploaded.png",
}

// TextEndpoint is the reserved upstream endpoint for generic text recovery.
const TextEndpoint = "gettext"

var endpointPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateEndpoint reports whether a caller-supplied endpoint token is safe
// to substitute into the upstream URL.
func ValidateEndpoint(endpoint string) error {
	if !endpointPattern.MatchString(endpoint) {
		return ErrInvalidEndpoint
	}
	return nil
}
