package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"clickscan/internal/config"
	"clickscan/internal/domain"
)

// Client forwards uploaded documents to the remote OCR service.
// It implements port.OCRClient.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates an OCR forwarding client from the upstream config.
func NewClient(cfg *config.UpstreamConfig) *Client {
	return newClient(cfg, cfg.BaseURL)
}

// NewClientWithBaseURL creates a client pointing at a custom base URL (for testing).
func NewClientWithBaseURL(cfg *config.UpstreamConfig, baseURL string) *Client {
	return newClient(cfg, baseURL)
}

func newClient(cfg *config.UpstreamConfig, baseURL string) *Client {
	timeout := cfg.Timeout()
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Forward sends one multipart POST carrying the document to the given
// upstream endpoint. Transport failures wrap domain.ErrUpstreamUnreachable;
// any HTTP response, 2xx or not, is returned as an UpstreamResult.
func (c *Client) Forward(ctx context.Context, doc *domain.UploadedDocument, endpoint string) (*domain.UpstreamResult, error) {
	body, contentType, err := buildMultipartBody(doc)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}

	targetURL := fmt.Sprintf("%s/ocr/%s/", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrUpstreamUnreachable, err)
	}

	result := &domain.UpstreamResult{
		StatusCode:  resp.StatusCode,
		RawBody:     respBody,
		ContentType: resp.Header.Get("Content-Type"),
	}
	decodeBody(result)
	return result, nil
}

func buildMultipartBody(doc *domain.UploadedDocument) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	// CreateFormFile would pin the part to application/octet-stream, so
	// build the part header by hand to carry the document's own MIME type.
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, doc.Filename))
	header.Set("Content-Type", doc.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(doc.Bytes); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf, writer.FormDataContentType(), nil
}

// decodeBody interprets the upstream body. Structured endpoints answer
// with a JSON object holding an optional "content" field; the gettext
// endpoint may answer with a JSON string or plain text instead.
func decodeBody(result *domain.UpstreamResult) {
	trimmed := bytes.TrimSpace(result.RawBody)
	if len(trimmed) == 0 {
		return
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(trimmed, &fields); err == nil {
		result.StructuredFields = fields
		if content, ok := fields["content"].(string); ok {
			result.RawText = strings.TrimSpace(content)
		}
		return
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		result.RawText = strings.TrimSpace(text)
		return
	}

	if !strings.Contains(result.ContentType, "json") {
		result.RawText = strings.TrimSpace(string(trimmed))
	}
}
