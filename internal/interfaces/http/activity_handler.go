package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/activity"
	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/period"
)

// ActivityHandler exposes the activity lifecycle and queries.
type ActivityHandler struct {
	svc     *activity.Service
	baseURL string
	log     zerolog.Logger
}

// NewActivityHandler builds the handler. baseURL prefixes the links in the Atom feed.
func NewActivityHandler(svc *activity.Service, baseURL string, log zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// Create godoc
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActivityRequest  true  "activity with signup lists"
// @Success      201   {object}  dto.ActivityResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	a, err := h.svc.Create(c.UserContext(), GetPrincipal(c), in, GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(activity.ToResponse(a))
}

// Get godoc
// @Summary      Activity in the request language
// @Tags         activities
// @Produce      json
// @Param        id   path  string  true  "activity id"
// @Success      200  {object}  dto.ActivityTranslationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	t, err := h.svc.Get(c.UserContext(), GetPrincipal(c), c.Params("id"), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(activity.ToTranslationResponse(t))
}

// Upcoming godoc
// @Summary      Upcoming approved activities
// @Tags         activities
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ActivityTranslationResponse]
// @Router       /api/activities [get]
func (h *ActivityHandler) Upcoming(c *fiber.Ctx) error {
	list, err := h.svc.Upcoming(c.UserContext(), GetPrincipal(c), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	items := activity.ToTranslationResponses(list)
	return c.JSON(dto.ListResponse[dto.ActivityTranslationResponse]{Items: items, Total: len(items)})
}

// ByStatus returns a handler listing the activities with status (bilingual).
func (h *ActivityHandler) ByStatus(status entity.ActivityStatus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := h.svc.ListByStatus(c.UserContext(), GetPrincipal(c), status, GetLocale(c))
		if err != nil {
			return writeError(c, h.log, err)
		}
		items := make([]dto.ActivityResponse, 0, len(list))
		for _, a := range list {
			items = append(items, activity.ToResponse(a))
		}
		return c.JSON(dto.ListResponse[dto.ActivityResponse]{Items: items, Total: len(items)})
	}
}

// Archive godoc
// @Summary      Approved activities of an association year
// @Tags         activities
// @Produce      json
// @Param        year  path  int  true  "first calendar year of the association year"
// @Success      200   {object}  dto.ListResponse[dto.ActivityTranslationResponse]
// @Router       /api/activities/archive/{year} [get]
func (h *ActivityHandler) Archive(c *fiber.Ctx) error {
	y := h.svc.CurrentAssociationYear()
	if raw := c.Params("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1900 || n > 9999 {
			return badBody(c)
		}
		y = period.AssociationYear(n)
	}
	list, err := h.svc.Archive(c.UserContext(), GetPrincipal(c), y, GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	items := activity.ToTranslationResponses(list)
	return c.JSON(dto.ListResponse[dto.ActivityTranslationResponse]{Items: items, Total: len(items)})
}

// Feed godoc
// @Summary      Atom feed of upcoming activities
// @Tags         activities
// @Produce      application/atom+xml
// @Success      200
// @Router       /api/activities/feed.atom [get]
func (h *ActivityHandler) Feed(c *fiber.Ctx) error {
	out, err := h.svc.Feed(c.UserContext(), GetPrincipal(c), h.baseURL, GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/atom+xml; charset=utf-8")
	return c.Send(out)
}

func (h *ActivityHandler) Approve(c *fiber.Ctx) error {
	a, err := h.svc.Approve(c.UserContext(), GetPrincipal(c), c.Params("id"), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(activity.ToResponse(a))
}

func (h *ActivityHandler) Disapprove(c *fiber.Ctx) error {
	a, err := h.svc.Disapprove(c.UserContext(), GetPrincipal(c), c.Params("id"), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(activity.ToResponse(a))
}

func (h *ActivityHandler) Reset(c *fiber.Ctx) error {
	a, err := h.svc.Reset(c.UserContext(), GetPrincipal(c), c.Params("id"), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(activity.ToResponse(a))
}
