package gallery

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hcms/hcms/internal/platform/auth"
	"github.com/hcms/hcms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api, public *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "editor"))

	g.GET("/gallery", h.List)
	g.GET("/gallery/:id", h.Get)
	g.POST("/gallery", h.Create)
	g.PUT("/gallery/:id", h.Update)
	g.PUT("/gallery/:id/active", h.SetActive)
	g.DELETE("/gallery", h.Delete)

	public.GET("/gallery", h.Public)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": "gallery item not found"})
}

func internal(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *Handler) Create(c echo.Context) error {
	var it Item
	if err := c.Bind(&it); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &it); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	it, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), c.QueryParam("category"), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*Item{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var it Item
	if err := c.Bind(&it); err != nil {
		return badRequest(c, err.Error())
	}
	it.ID = id
	if err := h.svc.Update(c.Request().Context(), &it); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, it)
}

func (h *Handler) SetActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body struct {
		Active *bool `json:"active"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	it, err := h.svc.SetActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c)
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Public(c echo.Context) error {
	items, err := h.svc.ListActive(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*Item{}
	}
	return c.JSON(http.StatusOK, items)
}
