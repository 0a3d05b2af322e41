package clinic

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

	g.GET("/pages", h.ListClinicPages)
	g.GET("/pages/:id", h.GetClinicPage)
	g.POST("/pages", h.CreateClinicPage)
	g.PUT("/pages/:id", h.UpdateClinicPage)
	g.PUT("/pages/:id/active", h.SetClinicPageActive)
	g.DELETE("/pages", h.DeleteClinicPage)

	g.GET("/treatments", h.ListTreatmentPages)
	g.GET("/treatments/:id", h.GetTreatmentPage)
	g.POST("/treatments", h.CreateTreatmentPage)
	g.PUT("/treatments/:id", h.UpdateTreatmentPage)
	g.PUT("/treatments/:id/active", h.SetTreatmentPageActive)
	g.DELETE("/treatments", h.DeleteTreatmentPage)

	g.GET("/services", h.ListServiceItems)
	g.GET("/services/:id", h.GetServiceItem)
	g.POST("/services", h.CreateServiceItem)
	g.PUT("/services/:id", h.UpdateServiceItem)
	g.PUT("/services/:id/active", h.SetServiceItemActive)
	g.DELETE("/services", h.DeleteServiceItem)

	g.GET("/equipment", h.ListEquipment)
	g.GET("/equipment/:id", h.GetEquipment)
	g.POST("/equipment", h.CreateEquipment)
	g.PUT("/equipment/:id", h.UpdateEquipment)
	g.PUT("/equipment/:id/active", h.SetEquipmentActive)
	g.DELETE("/equipment", h.DeleteEquipment)

	public.GET("/pages", h.PublicClinicPages)
	public.GET("/pages/:slug", h.PublicClinicPage)
	public.GET("/treatments", h.PublicTreatmentPages)
	public.GET("/treatments/:slug", h.PublicTreatmentPage)
	public.GET("/services", h.PublicServiceItems)
	public.GET("/equipment", h.PublicEquipment)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": msg})
}

func writeErr(c echo.Context, err error, entity string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return notFound(c, entity+" not found")
	case errors.Is(err, ErrDuplicateSlug):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		return badRequest(c, err.Error())
	}
}

func internal(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

type activeBody struct {
	Active *bool `json:"active"`
}

// -- Clinic pages --

func (h *Handler) CreateClinicPage(c echo.Context) error {
	var p ClinicPage
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreateClinicPage(c.Request().Context(), &p); err != nil {
		return writeErr(c, err, "page")
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetClinicPage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	p, err := h.svc.GetClinicPage(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "page not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListClinicPages(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListClinicPages(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*ClinicPage{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateClinicPage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var p ClinicPage
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err.Error())
	}
	p.ID = id
	if err := h.svc.UpdateClinicPage(c.Request().Context(), &p); err != nil {
		return writeErr(c, err, "page")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) SetClinicPageActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.svc.SetClinicPageActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "page not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteClinicPage(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeleteClinicPage(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "page not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicClinicPages(c echo.Context) error {
	items, err := h.svc.ListActiveClinicPages(c.Request().Context())
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*ClinicPage{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PublicClinicPage(c echo.Context) error {
	p, err := h.svc.GetPublicClinicPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFound(c, "page not found")
	}
	return c.JSON(http.StatusOK, p)
}

// -- Treatment pages --

func (h *Handler) CreateTreatmentPage(c echo.Context) error {
	var p TreatmentPage
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreateTreatmentPage(c.Request().Context(), &p); err != nil {
		return writeErr(c, err, "treatment")
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetTreatmentPage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	p, err := h.svc.GetTreatmentPage(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "treatment not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListTreatmentPages(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListTreatmentPages(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*TreatmentPage{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateTreatmentPage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var p TreatmentPage
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err.Error())
	}
	p.ID = id
	if err := h.svc.UpdateTreatmentPage(c.Request().Context(), &p); err != nil {
		return writeErr(c, err, "treatment")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) SetTreatmentPageActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.svc.SetTreatmentPageActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "treatment not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteTreatmentPage(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeleteTreatmentPage(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "treatment not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicTreatmentPages(c echo.Context) error {
	items, err := h.svc.ListActiveTreatmentPages(c.Request().Context())
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*TreatmentPage{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PublicTreatmentPage(c echo.Context) error {
	p, err := h.svc.GetPublicTreatmentPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return notFound(c, "treatment not found")
	}
	return c.JSON(http.StatusOK, p)
}

// -- Services --

func (h *Handler) CreateServiceItem(c echo.Context) error {
	var si ServiceItem
	if err := c.Bind(&si); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreateServiceItem(c.Request().Context(), &si); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, si)
}

func (h *Handler) GetServiceItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	si, err := h.svc.GetServiceItem(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "service not found")
	}
	return c.JSON(http.StatusOK, si)
}

func (h *Handler) ListServiceItems(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListServiceItems(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*ServiceItem{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateServiceItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var si ServiceItem
	if err := c.Bind(&si); err != nil {
		return badRequest(c, err.Error())
	}
	si.ID = id
	if err := h.svc.UpdateServiceItem(c.Request().Context(), &si); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "service not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, si)
}

func (h *Handler) SetServiceItemActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	si, err := h.svc.SetServiceItemActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "service not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, si)
}

func (h *Handler) DeleteServiceItem(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeleteServiceItem(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "service not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicServiceItems(c echo.Context) error {
	items, err := h.svc.ListActiveServiceItems(c.Request().Context())
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*ServiceItem{}
	}
	return c.JSON(http.StatusOK, items)
}

// -- Equipment --

func (h *Handler) CreateEquipment(c echo.Context) error {
	var eq Equipment
	if err := c.Bind(&eq); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreateEquipment(c.Request().Context(), &eq); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, eq)
}

func (h *Handler) GetEquipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	eq, err := h.svc.GetEquipment(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "equipment not found")
	}
	return c.JSON(http.StatusOK, eq)
}

func (h *Handler) ListEquipment(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListEquipment(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*Equipment{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateEquipment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var eq Equipment
	if err := c.Bind(&eq); err != nil {
		return badRequest(c, err.Error())
	}
	eq.ID = id
	if err := h.svc.UpdateEquipment(c.Request().Context(), &eq); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "equipment not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, eq)
}

func (h *Handler) SetEquipmentActive(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	eq, err := h.svc.SetEquipmentActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "equipment not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, eq)
}

func (h *Handler) DeleteEquipment(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeleteEquipment(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "equipment not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicEquipment(c echo.Context) error {
	items, err := h.svc.ListActiveEquipment(c.Request().Context())
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*Equipment{}
	}
	return c.JSON(http.StatusOK, items)
}
