package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/losdealla/members-api/internal/core/domain"
)

type stubPostRepo struct {
	posts  map[string]*domain.Post
	nextID int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post), nextID: 1}
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	created := *post
	created.ID = string(rune('0' + r.nextID))
	r.nextID++
	stored := created
	r.posts[created.ID] = &stored
	return &created, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrPostNotFound
	}
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func TestPostService_CreateAndGet(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	created, err := svc.CreatePost(context.Background(), &domain.Post{
		Title:  "Bienvenida",
		Author: "Equipo",
		Sections: []domain.Section{
			{Subtitle: "Intro", Text: "Hola"},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	got, err := svc.GetPost(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Bienvenida" || len(got.Sections) != 1 {
		t.Fatalf("unexpected post: %+v", got)
	}
}

func TestPostService_Create_MissingFields(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	if _, err := svc.CreatePost(context.Background(), &domain.Post{Title: "x"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPostService_Update_KeepsUnsetFields(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	created, _ := svc.CreatePost(context.Background(), &domain.Post{
		Title:    "Original",
		Author:   "Equipo",
		Sections: []domain.Section{{Text: "uno"}},
	})

	if err := svc.UpdatePost(context.Background(), &domain.Post{ID: created.ID, Title: "Nuevo"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, _ := svc.GetPost(context.Background(), created.ID)
	if got.Title != "Nuevo" {
		t.Fatalf("title not updated: %+v", got)
	}
	if got.Author != "Equipo" || len(got.Sections) != 1 {
		t.Fatalf("unset fields overwritten: %+v", got)
	}
}

func TestPostService_Delete_NotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	if err := svc.DeletePost(context.Background(), "missing"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
