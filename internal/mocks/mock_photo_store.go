package mocks

import (
	"context"
	"fmt"
	"io"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// MockPhotoStore implements domain.PhotoStore interface for testing
type MockPhotoStore struct {
	SaveFunc func(ctx context.Context, r io.Reader, originalName string) (string, error)

	saved int
}

// NewMockPhotoStore creates a new MockPhotoStore with default behaviors
func NewMockPhotoStore() *MockPhotoStore {
	return &MockPhotoStore{}
}

func (m *MockPhotoStore) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r, originalName)
	}
	// Default behavior: sequential URIs
	m.saved++
	return fmt.Sprintf("/uploads/photo-%d.jpg", m.saved), nil
}

// Compile-time interface compliance verification
var _ domain.PhotoStore = (*MockPhotoStore)(nil)
