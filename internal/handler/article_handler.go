package handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"remedial/internal/errors"
	"remedial/internal/service"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ArticleFormRequest represents the multipart form fields of an article write.
// The cover image travels as the "image" file part.
type ArticleFormRequest struct {
	Title       string `form:"title" validate:"required"`
	Content     string `form:"content" validate:"required"`
	Author      string `form:"author" validate:"required"`
	CategoryID  string `form:"category_id" validate:"required,uuid"`
	ReleaseDate string `form:"release_date" validate:"required"`
	TimesRead   int    `form:"times_read"`
}

// ArticleListResponse represents a list of article views.
type ArticleListResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// ListArticles godoc
// @Summary List articles joined with their category name
// @Tags articles
// @Produce json
// @Param categoryName query string false "Exact category name filter"
// @Success 200 {object} ArticleListResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	views, err := h.articleService.ListArticles(c.Request().Context(), c.QueryParam("categoryName"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: views})
}

// LatestArticles godoc
// @Summary List the most recent articles
// @Tags articles
// @Produce json
// @Param limit query int false "Maximum number of articles" default(3)
// @Success 200 {object} ArticleListResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/latest [get]
func (h *ArticleHandler) LatestArticles(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	views, err := h.articleService.LatestArticles(c.Request().Context(), limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: views})
}

// GetArticleByID godoc
// @Summary Get a single article by ID
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} ArticleListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) GetArticleByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid article ID",
			Code:  "INVALID_UUID",
		})
	}

	view, err := h.articleService.GetArticleByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: view})
}

// CreateArticle godoc
// @Summary Create an article with a cover image
// @Tags articles
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param author formData string true "Author"
// @Param category_id formData string true "Category ID"
// @Param release_date formData string true "Release date (RFC3339 or YYYY-MM-DD)"
// @Param times_read formData int false "Initial read counter"
// @Param image formData file true "Cover image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	actorID, err := actorID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	input, image, httpErr := bindArticleForm(c)
	if httpErr != nil {
		return httpErr
	}

	article, err := h.articleService.CreateArticle(c.Request().Context(), *input, *image, actorID)
	if err != nil {
		return articleWriteError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  "Success",
		"message": "Article created successfully",
		"data":    article,
	})
}

// UpdateArticleByID godoc
// @Summary Update an article and rotate its cover image
// @Tags articles
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param author formData string true "Author"
// @Param category_id formData string true "Category ID"
// @Param release_date formData string true "Release date (RFC3339 or YYYY-MM-DD)"
// @Param times_read formData int false "Read counter"
// @Param image formData file true "Cover image"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/{id} [put]
func (h *ArticleHandler) UpdateArticleByID(c echo.Context) error {
	actorID, err := actorID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid article ID",
			Code:  "INVALID_UUID",
		})
	}

	input, image, httpErr := bindArticleForm(c)
	if httpErr != nil {
		return httpErr
	}

	if _, err := h.articleService.UpdateArticleByID(c.Request().Context(), id, *input, *image, actorID); err != nil {
		return articleWriteError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "Success",
		"message": "Article updated successfully",
	})
}

// DeleteArticleByID godoc
// @Summary Delete an article and its hosted image
// @Tags articles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /articles/{id} [delete]
func (h *ArticleHandler) DeleteArticleByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid article ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.articleService.DeleteArticleByID(c.Request().Context(), id); err != nil {
		return articleWriteError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "Success",
		"message": "Article deleted successfully",
	})
}

// bindArticleForm binds and validates the multipart article form plus the
// image file part.
func bindArticleForm(c echo.Context) (*service.ArticleInput, *service.ImageUpload, error) {
	var req ArticleFormRequest
	if err := c.Bind(&req); err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid category_id",
			Code:  "INVALID_UUID",
		})
	}

	releaseDate, err := parseReleaseDate(req.ReleaseDate)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid release_date",
			Code:  "INVALID_DATE",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "image file is required",
			Code:  "IMAGE_REQUIRED",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "cannot read image file",
			Code:  "IMAGE_UNREADABLE",
		})
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "cannot read image file",
			Code:  "IMAGE_UNREADABLE",
		})
	}

	input := &service.ArticleInput{
		Title:       req.Title,
		Content:     req.Content,
		Author:      req.Author,
		CategoryID:  categoryID,
		ReleaseDate: releaseDate,
		TimesRead:   req.TimesRead,
	}
	image := &service.ImageUpload{
		Filename: fileHeader.Filename,
		Data:     data,
	}
	return input, image, nil
}

func parseReleaseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// articleWriteError maps known domain errors; anything else surfaces its raw
// message with a 500. Unlike the read paths, article writes do not collapse
// store and image host failures into a generic message.
func articleWriteError(err error) error {
	switch err {
	case errors.ErrArticleNotFound, errors.ErrCategoryNotFound:
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INTERNAL_ERROR",
		})
	}
}
