package service

import (
	"net/http"
	"strings"

	"clickscan/internal/domain"
)

// NormalizeUpload turns an inbound payload into a canonical
// UploadedDocument. Multipart uploads keep their declared filename and
// MIME type; raw-body uploads get the MIME type inferred from the request
// Content-Type (PNG, then JPEG, then PDF), sniffing the leading bytes when
// no type was declared. Content types outside the supported set are
// rejected rather than defaulted. Pure transformation, no I/O.
func NormalizeUpload(body []byte, contentType, filename string, maxBytes int64) (*domain.UploadedDocument, error) {
	if len(body) == 0 {
		return nil, domain.ErrEmptyPayload
	}
	if maxBytes > 0 && int64(len(body)) > maxBytes {
		return nil, domain.ErrPayloadTooLarge
	}

	if filename != "" {
		fileType, ok := matchContentType(contentType)
		if !ok {
			return nil, domain.ErrUnsupportedMediaType
		}
		return &domain.UploadedDocument{
			Bytes:       body,
			Filename:    filename,
			ContentType: domain.AllowedFileTypes[fileType],
			FileType:    fileType,
		}, nil
	}

	declared := strings.ToLower(strings.TrimSpace(contentType))
	if declared == "" || strings.HasPrefix(declared, "application/octet-stream") {
		// No usable declared type; fall back to magic-byte detection.
		declared = strings.ToLower(http.DetectContentType(body))
	}

	fileType, ok := matchContentType(declared)
	if !ok {
		return nil, domain.ErrUnsupportedMediaType
	}
	return &domain.UploadedDocument{
		Bytes:       body,
		Filename:    domain.UploadFilenames[fileType],
		ContentType: domain.AllowedFileTypes[fileType],
		FileType:    fileType,
	}, nil
}

// matchContentType resolves a declared content type by substring match in
// priority order: PNG, then JPEG, then PDF.
func matchContentType(contentType string) (domain.FileType, bool) {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "image/png"):
		return domain.FileTypePNG, true
	case strings.Contains(ct, "image/jpeg"), strings.Contains(ct, "image/jpg"):
		return domain.FileTypeJPG, true
	case strings.Contains(ct, "application/pdf"):
		return domain.FileTypePDF, true
	default:
		return "", false
	}
}
