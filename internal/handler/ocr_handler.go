package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"clickscan/internal/service"
)

// OCRHandler handles document forwarding endpoints.
type OCRHandler struct {
	ocrService service.OCRService
	maxBytes   int64
}

// NewOCRHandler creates a new OCRHandler.
func NewOCRHandler(ocrService service.OCRService, maxBytes int64) *OCRHandler {
	return &OCRHandler{ocrService: ocrService, maxBytes: maxBytes}
}

// Proxy handles POST /ocr/:endpoint
// The body is either raw binary with a Content-Type header, or a
// multipart form with a "file" field. Oversize requests are rejected
// from the declared Content-Length before the body is read.
func (h *OCRHandler) Proxy(c *gin.Context) {
	if h.maxBytes > 0 && c.Request.ContentLength > h.maxBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "payload exceeds maximum allowed size")
		return
	}

	input := service.ProcessInput{Endpoint: c.Param("endpoint")}

	requestType := c.GetHeader("Content-Type")
	if strings.Contains(strings.ToLower(requestType), "multipart/form-data") {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			RespondError(c, http.StatusBadRequest, "file field is required")
			return
		}
		defer func() { _ = file.Close() }()

		body, err := io.ReadAll(file)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "failed to read uploaded file")
			return
		}
		input.Body = body
		input.Filename = header.Filename
		input.ContentType = header.Header.Get("Content-Type")
	} else {
		reader := c.Request.Body
		if h.maxBytes > 0 {
			reader = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
		}
		body, err := io.ReadAll(reader)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				RespondError(c, http.StatusRequestEntityTooLarge, "payload exceeds maximum allowed size")
				return
			}
			RespondError(c, http.StatusBadRequest, "failed to read request body")
			return
		}
		input.Body = body
		input.ContentType = requestType
	}

	result, err := h.ocrService.Process(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	contentType := result.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(result.StatusCode, contentType, result.Body)
}
