package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"clickscan/internal/config"
	"clickscan/internal/domain"
	"clickscan/internal/extract"
	"clickscan/internal/port"
)

// ProcessInput is the DTO for document forwarding requests. Filename is
// set only when the caller sent an explicit multipart file part; raw-body
// uploads get a synthesized filename during normalization.
type ProcessInput struct {
	Endpoint    string
	Body        []byte
	ContentType string
	Filename    string
}

// ProcessResult holds the final response to relay to the caller.
type ProcessResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OCRService defines the document-forwarding-and-extraction contract.
type OCRService interface {
	Process(ctx context.Context, input ProcessInput) (*ProcessResult, error)
}

type ocrService struct {
	client       port.OCRClient
	textEndpoint string
	maxBytes     int64
}

// NewOCRService creates a new OCRService implementation.
func NewOCRService(client port.OCRClient, upstreamCfg *config.UpstreamConfig, uploadCfg *config.UploadConfig) OCRService {
	textEndpoint := upstreamCfg.TextEndpoint
	if textEndpoint == "" {
		textEndpoint = domain.TextEndpoint
	}
	return &ocrService{
		client:       client,
		textEndpoint: textEndpoint,
		maxBytes:     uploadCfg.MaxBytes(),
	}
}

func (s *ocrService) Process(ctx context.Context, input ProcessInput) (*ProcessResult, error) {
	if err := domain.ValidateEndpoint(input.Endpoint); err != nil {
		return nil, err
	}

	doc, err := NormalizeUpload(input.Body, input.ContentType, input.Filename, s.maxBytes)
	if err != nil {
		return nil, err
	}

	uploadID := uuid.New()
	start := time.Now()
	log.Printf("ocrService.Process: [%s] forwarding %s (%s, %d bytes) to endpoint %s",
		uploadID, doc.Filename, doc.ContentType, len(doc.Bytes), input.Endpoint)

	result, err := s.resolveText(ctx, doc, input.Endpoint, uploadID)
	if err != nil {
		return nil, err
	}
	log.Printf("ocrService.Process: [%s] upstream answered %d in %.2fs",
		uploadID, result.StatusCode, time.Since(start).Seconds())

	// Non-2xx primary responses pass through verbatim; extraction is
	// attempted only on a successful primary call.
	if !result.Success() {
		return &ProcessResult{
			StatusCode:  result.StatusCode,
			ContentType: result.ContentType,
			Body:        result.RawBody,
		}, nil
	}

	ruleSet := extract.ForEndpoint(input.Endpoint)
	fields := extract.Extract(result.RawText, ruleSet)

	body, err := assemble(result, fields, ruleSet.DocumentType())
	if err != nil {
		return nil, fmt.Errorf("assembling response: %w", err)
	}

	return &ProcessResult{
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Body:        body,
	}, nil
}

// resolveText runs the primary upstream call and, when it succeeds without
// recovering any text, one best-effort call to the generic text endpoint.
// A transport failure of the primary call is terminal; a failure of the
// fallback call only degrades the result and is never escalated.
func (s *ocrService) resolveText(ctx context.Context, doc *domain.UploadedDocument, endpoint string, uploadID uuid.UUID) (*domain.UpstreamResult, error) {
	primary, err := s.client.Forward(ctx, doc, endpoint)
	if err != nil {
		return nil, err
	}
	if !primary.Success() || primary.RawText != "" {
		return primary, nil
	}
	if endpoint == s.textEndpoint {
		return primary, nil
	}

	log.Printf("ocrService.resolveText: [%s] no content from %s, falling back to %s",
		uploadID, endpoint, s.textEndpoint)

	fallback, err := s.client.Forward(ctx, doc, s.textEndpoint)
	if err != nil {
		log.Printf("ocrService.resolveText: [%s] text fallback failed: %v", uploadID, err)
		return primary, nil
	}
	if !fallback.Success() || fallback.RawText == "" {
		log.Printf("ocrService.resolveText: [%s] text fallback answered %d with no text",
			uploadID, fallback.StatusCode)
		return primary, nil
	}

	primary.RawText = fallback.RawText
	return primary, nil
}

// assemble merges extracted fields into the upstream payload under
// parsedData. Upstream-supplied values are never overwritten unless empty;
// a non-JSON upstream body (the gettext plain-text case) gets a
// synthesized wrapper.
func assemble(result *domain.UpstreamResult, fields map[string]string, documentType string) ([]byte, error) {
	payload := result.StructuredFields
	if payload == nil {
		payload = make(map[string]interface{})
	}

	if _, ok := payload["document_type"]; !ok {
		payload["document_type"] = documentType
	}
	if content, ok := payload["content"].(string); !ok || strings.TrimSpace(content) == "" {
		payload["content"] = result.RawText
	}

	parsed, _ := payload["parsedData"].(map[string]interface{})
	if parsed == nil {
		parsed = make(map[string]interface{})
	}
	for field, value := range fields {
		if current, exists := parsed[field]; exists && !isEmptyValue(current) {
			continue
		}
		parsed[field] = value
	}
	payload["parsedData"] = parsed

	return json.Marshal(payload)
}

func isEmptyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
