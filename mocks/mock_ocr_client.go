package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clickscan/internal/domain"
)

// MockOCRClient is a mock implementation of port.OCRClient.
type MockOCRClient struct {
	mock.Mock
}

func (m *MockOCRClient) Forward(ctx context.Context, doc *domain.UploadedDocument, endpoint string) (*domain.UpstreamResult, error) {
	args := m.Called(ctx, doc, endpoint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpstreamResult), args.Error(1)
}
