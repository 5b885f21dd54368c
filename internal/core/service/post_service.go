package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
)

// PostService implements blog post CRUD. Plain persistence orchestration;
// the blog carries no access rules of its own beyond the admin gate applied
// at the transport layer.
type PostService struct {
	posts ports.PostRepository
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, log: log}
}

func (s *PostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.Title == "" || post.Author == "" {
		return nil, domain.ErrInvalidInput
	}
	post.CreatedAt = time.Now().UTC()

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("post_id", created.ID).Str("title", created.Title).Msg("post created")
	return created, nil
}

func (s *PostService) UpdatePost(ctx context.Context, post *domain.Post) error {
	existing, err := s.posts.FindByID(ctx, post.ID)
	if err != nil {
		return err
	}
	if post.Title == "" {
		post.Title = existing.Title
	}
	if post.Author == "" {
		post.Author = existing.Author
	}
	if post.Sections == nil {
		post.Sections = existing.Sections
	}
	post.CreatedAt = existing.CreatedAt

	return s.posts.Update(ctx, post)
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}
