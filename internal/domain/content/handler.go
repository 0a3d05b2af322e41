package content

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

	g.GET("/hero-slides", h.ListHeroSlides)
	g.GET("/hero-slides/:id", h.GetHeroSlide)
	g.POST("/hero-slides", h.CreateHeroSlide)
	g.PUT("/hero-slides/:id", h.UpdateHeroSlide)
	g.PUT("/hero-slides/:id/active", h.SetHeroSlideActive)
	g.DELETE("/hero-slides", h.DeleteHeroSlide)

	g.GET("/popups", h.ListPopups)
	g.GET("/popups/:id", h.GetPopup)
	g.POST("/popups", h.CreatePopup)
	g.PUT("/popups/:id", h.UpdatePopup)
	g.PUT("/popups/:id/active", h.SetPopupActive)
	g.DELETE("/popups", h.DeletePopup)

	g.GET("/notices", h.ListNotices)
	g.GET("/notices/:id", h.GetNotice)
	g.POST("/notices", h.CreateNotice)
	g.PUT("/notices/:id", h.UpdateNotice)
	g.PUT("/notices/:id/active", h.SetNoticeActive)
	g.DELETE("/notices", h.DeleteNotice)

	g.GET("/info-cards", h.ListInfoCards)
	g.GET("/info-cards/:id", h.GetInfoCard)
	g.POST("/info-cards", h.CreateInfoCard)
	g.PUT("/info-cards/:id", h.UpdateInfoCard)
	g.PUT("/info-cards/:id/active", h.SetInfoCardActive)
	g.DELETE("/info-cards", h.DeleteInfoCard)

	g.GET("/health-info", h.ListHealthInfo)
	g.GET("/health-info/:id", h.GetHealthInfo)
	g.POST("/health-info", h.CreateHealthInfo)
	g.PUT("/health-info/:id", h.UpdateHealthInfo)
	g.PUT("/health-info/:id/active", h.SetHealthInfoActive)
	g.DELETE("/health-info", h.DeleteHealthInfo)

	public.GET("/hero-slides", h.PublicHeroSlides)
	public.GET("/popups", h.PublicPopups)
	public.GET("/notices", h.PublicNotices)
	public.GET("/notices/:id", h.PublicNotice)
	public.GET("/info-cards", h.PublicInfoCards)
	public.GET("/health-info", h.PublicHealthInfo)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": msg})
}

func internal(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func queryID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.QueryParam("id"))
}

type activeBody struct {
	Active *bool `json:"active"`
}

// -- Hero slides --

func (h *Handler) CreateHeroSlide(c echo.Context) error {
	var hs HeroSlide
	if err := c.Bind(&hs); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreateHeroSlide(c.Request().Context(), &hs); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, hs)
}

func (h *Handler) GetHeroSlide(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	hs, err := h.svc.GetHeroSlide(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "hero slide not found")
	}
	return c.JSON(http.StatusOK, hs)
}

func (h *Handler) ListHeroSlides(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListHeroSlides(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*HeroSlide{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateHeroSlide(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var hs HeroSlide
	if err := c.Bind(&hs); err != nil {
		return badRequest(c, err.Error())
	}
	hs.ID = id
	if err := h.svc.UpdateHeroSlide(c.Request().Context(), &hs); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "hero slide not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, hs)
}

func (h *Handler) SetHeroSlideActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	hs, err := h.svc.SetHeroSlideActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "hero slide not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, hs)
}

func (h *Handler) DeleteHeroSlide(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeleteHeroSlide(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "hero slide not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicHeroSlides(c echo.Context) error {
	items, err := h.svc.ListActiveHeroSlides(c.Request().Context())
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*HeroSlide{}
	}
	return c.JSON(http.StatusOK, items)
}

// -- Popups --

func (h *Handler) CreatePopup(c echo.Context) error {
	var p Popup
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreatePopup(c.Request().Context(), &p); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetPopup(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	p, err := h.svc.GetPopup(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "popup not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPopups(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListPopups(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*Popup{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdatePopup(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var p Popup
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err.Error())
	}
	p.ID = id
	if err := h.svc.UpdatePopup(c.Request().Context(), &p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "popup not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) SetPopupActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.svc.SetPopupActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "popup not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePopup(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeletePopup(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "popup not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicPopups(c echo.Context) error {
	items, err := h.svc.ListVisiblePopups(c.Request().Context())
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*Popup{}
	}
	return c.JSON(http.StatusOK, items)
}

// -- Notices --

func (h *Handler) CreateNotice(c echo.Context) error {
	var n Notice
	if err := c.Bind(&n); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreateNotice(c.Request().Context(), &n); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *Handler) GetNotice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	n, err := h.svc.GetNotice(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "notice not found")
	}
	return c.JSON(http.StatusOK, n)
}

func noticeSearchParams(c echo.Context) map[string]string {
	params := map[string]string{}
	if v := c.QueryParam("q"); v != "" {
		params["q"] = v
	}
	if v := c.QueryParam("category"); v != "" {
		params["category"] = v
	}
	return params
}

func (h *Handler) ListNotices(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.SearchNotices(c.Request().Context(), noticeSearchParams(c), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*Notice{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateNotice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var n Notice
	if err := c.Bind(&n); err != nil {
		return badRequest(c, err.Error())
	}
	n.ID = id
	if err := h.svc.UpdateNotice(c.Request().Context(), &n); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "notice not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) SetNoticeActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	n, err := h.svc.SetNoticeActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "notice not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) DeleteNotice(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeleteNotice(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "notice not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicNotices(c echo.Context) error {
	pg := pagination.FromContext(c)
	params := noticeSearchParams(c)
	params["active"] = "true"
	items, total, err := h.svc.SearchNotices(c.Request().Context(), params, pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*Notice{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) PublicNotice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	n, err := h.svc.GetPublicNotice(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "notice not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, n)
}

// -- Info cards --

func (h *Handler) CreateInfoCard(c echo.Context) error {
	var ic InfoCard
	if err := c.Bind(&ic); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreateInfoCard(c.Request().Context(), &ic); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, ic)
}

func (h *Handler) GetInfoCard(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	ic, err := h.svc.GetInfoCard(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "info card not found")
	}
	return c.JSON(http.StatusOK, ic)
}

func (h *Handler) ListInfoCards(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListInfoCards(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*InfoCard{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateInfoCard(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var ic InfoCard
	if err := c.Bind(&ic); err != nil {
		return badRequest(c, err.Error())
	}
	ic.ID = id
	if err := h.svc.UpdateInfoCard(c.Request().Context(), &ic); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "info card not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, ic)
}

func (h *Handler) SetInfoCardActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	ic, err := h.svc.SetInfoCardActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "info card not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, ic)
}

func (h *Handler) DeleteInfoCard(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeleteInfoCard(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "info card not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicInfoCards(c echo.Context) error {
	items, err := h.svc.ListActiveInfoCards(c.Request().Context())
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*InfoCard{}
	}
	return c.JSON(http.StatusOK, items)
}

// -- Health info --

func (h *Handler) CreateHealthInfo(c echo.Context) error {
	var hi HealthInfo
	if err := c.Bind(&hi); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.svc.CreateHealthInfo(c.Request().Context(), &hi); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusCreated, hi)
}

func (h *Handler) GetHealthInfo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	hi, err := h.svc.GetHealthInfo(c.Request().Context(), id)
	if err != nil {
		return notFound(c, "health info not found")
	}
	return c.JSON(http.StatusOK, hi)
}

func (h *Handler) ListHealthInfo(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListHealthInfo(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*HealthInfo{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateHealthInfo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var hi HealthInfo
	if err := c.Bind(&hi); err != nil {
		return badRequest(c, err.Error())
	}
	hi.ID = id
	if err := h.svc.UpdateHealthInfo(c.Request().Context(), &hi); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "health info not found")
		}
		return badRequest(c, err.Error())
	}
	return c.JSON(http.StatusOK, hi)
}

func (h *Handler) SetHealthInfoActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}
	var body activeBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err.Error())
	}
	hi, err := h.svc.SetHealthInfoActive(c.Request().Context(), id, body.Active)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "health info not found")
		}
		return internal(c, err)
	}
	return c.JSON(http.StatusOK, hi)
}

func (h *Handler) DeleteHealthInfo(c echo.Context) error {
	id, err := queryID(c)
	if err != nil {
		return badRequest(c, "id query parameter is required")
	}
	if err := h.svc.DeleteHealthInfo(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return notFound(c, "health info not found")
		}
		return internal(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) PublicHealthInfo(c echo.Context) error {
	items, err := h.svc.ListActiveHealthInfo(c.Request().Context())
	if err != nil {
		return internal(c, err)
	}
	if items == nil {
		items = []*HealthInfo{}
	}
	return c.JSON(http.StatusOK, items)
}
