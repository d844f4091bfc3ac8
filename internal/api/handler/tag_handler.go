package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ShaharSolema/TasksFlow/internal/api/metrics"
	"github.com/ShaharSolema/TasksFlow/internal/core/domain"
	"github.com/ShaharSolema/TasksFlow/internal/core/ports"
)

// TagHandler handles the per-kind label and category endpoints.
type TagHandler struct {
	service ports.BoardService
}

func NewTagHandler(service ports.BoardService) *TagHandler {
	return &TagHandler{service: service}
}

type addTagRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

type labelsResponse struct {
	Labels []domain.Tag `json:"labels"`
}

type categoriesResponse struct {
	Categories []domain.Tag `json:"categories"`
}

// List handles GET /tags/:kind.
//
// @Summary      List labels and categories for a kind
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Board kind (task or job)"
// @Success      200   {object}  ports.TagSet
// @Failure      400   {object}  map[string]string
// @Router       /tags/{kind} [get]
func (h *TagHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	kind, err := paramKind(c)
	if err != nil {
		return err
	}

	tags, err := h.service.Tags(c.Request().Context(), userID, kind)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tags)
}

// AddLabel handles POST /tags/:kind/labels.
//
// @Summary      Add a label
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string         true  "Board kind (task or job)"
// @Param        body  body      addTagRequest  true  "Label details"
// @Success      201   {object}  labelsResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /tags/{kind}/labels [post]
func (h *TagHandler) AddLabel(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	kind, err := paramKind(c)
	if err != nil {
		return err
	}

	var req addTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	labels, err := h.service.AddLabel(c.Request().Context(), userID, kind, req.Name, req.Color)
	if err != nil {
		return err
	}

	metrics.BoardOps.WithLabelValues(string(kind), "add_label").Inc()
	return c.JSON(http.StatusCreated, labelsResponse{Labels: labels})
}

// AddCategory handles POST /tags/:kind/categories.
//
// @Summary      Add a category
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string         true  "Board kind (task or job)"
// @Param        body  body      addTagRequest  true  "Category details"
// @Success      201   {object}  categoriesResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /tags/{kind}/categories [post]
func (h *TagHandler) AddCategory(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}
	kind, err := paramKind(c)
	if err != nil {
		return err
	}

	var req addTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	categories, err := h.service.AddCategory(c.Request().Context(), userID, kind, req.Name, req.Color)
	if err != nil {
		return err
	}

	metrics.BoardOps.WithLabelValues(string(kind), "add_category").Inc()
	return c.JSON(http.StatusCreated, categoriesResponse{Categories: categories})
}
