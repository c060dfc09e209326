package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dbuhub/blog-admin-api/internal/api/metrics"
	"github.com/dbuhub/blog-admin-api/internal/api/middleware"
	"github.com/dbuhub/blog-admin-api/internal/core/domain"
	"github.com/dbuhub/blog-admin-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /post.
//
// @Summary      Create a post
// @Tags         post
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Title and content"
// @Success      201   {object}  postResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /post [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	post, err := h.service.Create(c.Request().Context(), req.Title, req.Content, user.ID)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// List handles GET /post/all. Public, unfiltered and unpaginated.
//
// @Summary      List all posts
// @Tags         post
// @Produce      json
// @Success      200  {array}   postResponse
// @Failure      500  {object}  errorResponse
// @Router       /post/all [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toPostResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /post/:id.
//
// @Summary      Update a post you own
// @Tags         post
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Post id"
// @Param        body  body      postRequest  true  "New title and content"
// @Success      200   {object}  postResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /post/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	// Ownership is checked here against the resolved identity and again
	// inside the service before the row is touched.
	if err := h.checkOwnership(c, id, user.ID); err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), id, req.Title, req.Content, user.ID)
	if err != nil {
		return mapPostError(err, "update")
	}

	metrics.PostsUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /post/:id.
//
// @Summary      Delete a post you own
// @Tags         post
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Post id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /post/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	if err := h.checkOwnership(c, id, user.ID); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, user.ID); err != nil {
		return mapPostError(err, "delete")
	}

	metrics.PostsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, deletedResponse{Detail: "post deleted successfully"})
}

// checkOwnership verifies the acting user created the post before any
// mutation is attempted. The service repeats the check before the row is
// touched.
func (h *PostHandler) checkOwnership(c echo.Context, id, actorID int64) error {
	post, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return mapPostError(err, "modify")
	}
	if post.CreatorID != actorID {
		return echo.NewHTTPError(http.StatusForbidden, "not authorized to modify this post")
	}
	return nil
}

// mapPostError translates domain errors to HTTP errors; anything else flows
// to the central error handler as a 500.
func mapPostError(err error, op string) error {
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	case errors.Is(err, domain.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "not authorized to "+op+" this post")
	}
	return err
}

func postID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	return id, nil
}
