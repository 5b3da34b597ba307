package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/activity"
	"github.com/gewis/gewisweb-api/internal/application/dto"
)

const kioskCacheKey = "activity_api/list"

// KioskHandler serves the touch-screen activity list. The projection is cached for ttl.
type KioskHandler struct {
	svc   *activity.Service
	cache *cache.Cache
	log   zerolog.Logger
}

func NewKioskHandler(svc *activity.Service, ttl time.Duration, log zerolog.Logger) *KioskHandler {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &KioskHandler{svc: svc, cache: cache.New(ttl, 2*ttl), log: log}
}

// List godoc
// @Summary      Upcoming activities for the kiosk, both languages
// @Tags         kiosk
// @Produce      json
// @Success      200  {array}  dto.ActivityResponse
// @Router       /api/activity_api/list [get]
func (h *KioskHandler) List(c *fiber.Ctx) error {
	if v, ok := h.cache.Get(kioskCacheKey); ok {
		c.Set("X-Cache", "HIT")
		return c.JSON(v)
	}
	list, err := h.svc.KioskList(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	items := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		items = append(items, activity.ToResponse(a))
	}
	h.cache.SetDefault(kioskCacheKey, items)
	c.Set("X-Cache", "MISS")
	return c.JSON(items)
}

// Invalidate drops the cached list, e.g. after an activity status change.
func (h *KioskHandler) Invalidate() {
	h.cache.Delete(kioskCacheKey)
}
