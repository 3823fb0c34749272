package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"remedial/internal/errors"
	"remedial/internal/service"
)

// ArticleCategoryHandler handles article category endpoints.
type ArticleCategoryHandler struct {
	categoryService service.ArticleCategoryService
}

// NewArticleCategoryHandler creates a new article category handler.
func NewArticleCategoryHandler(categoryService service.ArticleCategoryService) *ArticleCategoryHandler {
	return &ArticleCategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category create or rename request.
type CategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
}

// ListCategories godoc
// @Summary List article categories
// @Tags article-categories
// @Produce json
// @Success 200 {object} ArticleListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /article-categories [get]
func (h *ArticleCategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: categories})
}

// GetCategoryByID godoc
// @Summary Get an article category by ID
// @Tags article-categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} ArticleListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /article-categories/{id} [get]
func (h *ArticleCategoryHandler) GetCategoryByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid category ID",
			Code:  "INVALID_UUID",
		})
	}

	category, err := h.categoryService.GetCategoryByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: category})
}

// CreateCategory godoc
// @Summary Create an article category
// @Tags article-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /article-categories [post]
func (h *ArticleCategoryHandler) CreateCategory(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	category, err := h.categoryService.CreateCategory(c.Request().Context(), req.CategoryName, actor)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  "Success",
		"message": "Article Category created successfully",
		"data":    category,
	})
}

// UpdateCategoryByID godoc
// @Summary Rename an article category
// @Tags article-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} ArticleListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /article-categories/{id} [put]
func (h *ArticleCategoryHandler) UpdateCategoryByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid category ID",
			Code:  "INVALID_UUID",
		})
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	category, err := h.categoryService.UpdateCategoryByID(c.Request().Context(), id, req.CategoryName)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: category})
}

// DeleteCategoryByID godoc
// @Summary Delete an article category
// @Tags article-categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /article-categories/{id} [delete]
func (h *ArticleCategoryHandler) DeleteCategoryByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid category ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.categoryService.DeleteCategoryByID(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "Success",
		"message": "Article category deleted successfully",
	})
}
