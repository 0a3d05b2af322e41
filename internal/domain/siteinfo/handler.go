package siteinfo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcms/hcms/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Singleton endpoints omit the list shape. GET answers the record or a JSON
// null when nothing has been saved yet; POST and PUT both upsert.
func (h *Handler) RegisterRoutes(api, public *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "editor"))

	g.GET("/contact-info", h.GetContactInfo)
	g.POST("/contact-info", h.SaveContactInfo)
	g.PUT("/contact-info", h.SaveContactInfo)

	g.GET("/footer-info", h.GetFooterInfo)
	g.POST("/footer-info", h.SaveFooterInfo)
	g.PUT("/footer-info", h.SaveFooterInfo)

	g.GET("/hospital-info", h.GetHospitalInfo)
	g.POST("/hospital-info", h.SaveHospitalInfo)
	g.PUT("/hospital-info", h.SaveHospitalInfo)

	g.GET("/clinic-hours", h.GetClinicHours)
	g.POST("/clinic-hours", h.SaveClinicHours)
	g.PUT("/clinic-hours", h.SaveClinicHours)

	public.GET("/contact-info", h.GetContactInfo)
	public.GET("/footer-info", h.GetFooterInfo)
	public.GET("/hospital-info", h.GetHospitalInfo)
	public.GET("/clinic-hours", h.GetClinicHours)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func internal(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *Handler) GetContactInfo(c echo.Context) error {
	in, err := h.svc.GetContactInfo(c.Request().Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *Handler) SaveContactInfo(c echo.Context) error {
	var in ContactInfo
	if err := c.Bind(&in); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.SaveContactInfo(c.Request().Context(), &in); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, in)
}

func (h *Handler) GetFooterInfo(c echo.Context) error {
	in, err := h.svc.GetFooterInfo(c.Request().Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *Handler) SaveFooterInfo(c echo.Context) error {
	var in FooterInfo
	if err := c.Bind(&in); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.SaveFooterInfo(c.Request().Context(), &in); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, in)
}

func (h *Handler) GetHospitalInfo(c echo.Context) error {
	in, err := h.svc.GetHospitalInfo(c.Request().Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *Handler) SaveHospitalInfo(c echo.Context) error {
	var in HospitalInfo
	if err := c.Bind(&in); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.SaveHospitalInfo(c.Request().Context(), &in); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, in)
}

func (h *Handler) GetClinicHours(c echo.Context) error {
	in, err := h.svc.GetClinicHours(c.Request().Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *Handler) SaveClinicHours(c echo.Context) error {
	var in ClinicHours
	if err := c.Bind(&in); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.SaveClinicHours(c.Request().Context(), &in); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, in)
}
