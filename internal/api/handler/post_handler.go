package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/losdealla/members-api/internal/core/domain"
	"github.com/losdealla/members-api/internal/core/ports"
)

type PostHandler struct {
	postService ports.PostService
}

func NewPostHandler(postService ports.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

type sectionPayload struct {
	Image    string `json:"image"`
	Subtitle string `json:"subtitle"`
	Text     string `json:"text" validate:"required"`
}

type postRequest struct {
	Title    string           `json:"title" validate:"required"`
	Author   string           `json:"author" validate:"required"`
	Sections []sectionPayload `json:"sections" validate:"dive"`
}

func (r *postRequest) sections() []domain.Section {
	out := make([]domain.Section, len(r.Sections))
	for i, s := range r.Sections {
		out[i] = domain.Section{Image: s.Image, Subtitle: s.Subtitle, Text: s.Text}
	}
	return out
}

// List returns all posts, newest first.
//
// @Summary      List posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}  domain.Post
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns a single post.
//
// @Summary      Get a post
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Create adds a new post with its sections.
//
// @Summary      Create a post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post content"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.postService.CreatePost(c.Request().Context(), &domain.Post{
		Title:    req.Title,
		Author:   req.Author,
		Sections: req.sections(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces the title, author and sections of a post.
//
// @Summary      Update a post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post ID"
// @Param        body  body      postRequest  true  "Post content"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post := &domain.Post{
		ID:     c.Param("id"),
		Title:  req.Title,
		Author: req.Author,
	}
	if req.Sections != nil {
		post.Sections = req.sections()
	}

	if err := h.postService.UpdatePost(c.Request().Context(), post); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post updated"})
}

// Delete removes a post.
//
// @Summary      Delete a post
// @Tags         blog
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.postService.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
