package port

import (
	"context"

	"clickscan/internal/domain"
)

// OCRClient abstracts the outbound call to the remote OCR service.
// A non-2xx upstream response is returned as a result, not an error;
// errors are reserved for transport-level failures.
type OCRClient interface {
	Forward(ctx context.Context, doc *domain.UploadedDocument, endpoint string) (*domain.UpstreamResult, error)
}
