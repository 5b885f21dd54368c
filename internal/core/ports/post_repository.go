package ports

import (
	"context"

	"github.com/losdealla/members-api/internal/core/domain"
)

// PostRepository defines the persistence interface for blog posts.
type PostRepository interface {
	FindAll(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
