package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"remedial/internal/errors"
	"remedial/internal/service"
)

// OfflineClassHandler handles offline class endpoints.
type OfflineClassHandler struct {
	classService service.OfflineClassService
}

// NewOfflineClassHandler creates a new offline class handler.
func NewOfflineClassHandler(classService service.OfflineClassService) *OfflineClassHandler {
	return &OfflineClassHandler{classService: classService}
}

// OfflineClassRequest represents an offline class create or update request.
type OfflineClassRequest struct {
	Subject   string `json:"subject" validate:"required"`
	Location  string `json:"location" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	Time      string `json:"time" validate:"required"`
}

func (r *OfflineClassRequest) toInput() (service.OfflineClassInput, error) {
	startDate, err := parseReleaseDate(r.StartDate)
	if err != nil {
		return service.OfflineClassInput{}, err
	}
	return service.OfflineClassInput{
		Subject:   r.Subject,
		Location:  r.Location,
		StartDate: startDate,
		Time:      r.Time,
	}, nil
}

// ListClasses godoc
// @Summary List offline classes
// @Tags offline-classes
// @Produce json
// @Success 200 {object} ArticleListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /offline-classes [get]
func (h *OfflineClassHandler) ListClasses(c echo.Context) error {
	classes, err := h.classService.ListClasses(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: classes})
}

// GetClassByID godoc
// @Summary Get an offline class by ID
// @Tags offline-classes
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} ArticleListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /offline-classes/{id} [get]
func (h *OfflineClassHandler) GetClassByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid class ID",
			Code:  "INVALID_UUID",
		})
	}

	class, err := h.classService.GetClassByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: class})
}

// CreateClass godoc
// @Summary Create an offline class
// @Tags offline-classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OfflineClassRequest true "Class data"
// @Success 201 {object} ArticleListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /offline-classes [post]
func (h *OfflineClassHandler) CreateClass(c echo.Context) error {
	req, httpErr := bindClassRequest(c)
	if httpErr != nil {
		return httpErr
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid start_date",
			Code:  "INVALID_DATE",
		})
	}

	class, err := h.classService.CreateClass(c.Request().Context(), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, ArticleListResponse{Status: "Success", Data: class})
}

// UpdateClassByID godoc
// @Summary Update an offline class
// @Tags offline-classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Param request body OfflineClassRequest true "Class data"
// @Success 200 {object} ArticleListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /offline-classes/{id} [put]
func (h *OfflineClassHandler) UpdateClassByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid class ID",
			Code:  "INVALID_UUID",
		})
	}

	req, httpErr := bindClassRequest(c)
	if httpErr != nil {
		return httpErr
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid start_date",
			Code:  "INVALID_DATE",
		})
	}

	class, err := h.classService.UpdateClassByID(c.Request().Context(), id, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Status: "Success", Data: class})
}

// DeleteClassByID godoc
// @Summary Delete an offline class
// @Tags offline-classes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /offline-classes/{id} [delete]
func (h *OfflineClassHandler) DeleteClassByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid class ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.classService.DeleteClassByID(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "Success",
		"message": "Offline class deleted successfully",
	})
}

func bindClassRequest(c echo.Context) (*OfflineClassRequest, error) {
	var req OfflineClassRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return &req, nil
}
