package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/application/organ"
)

// OrganHandler exposes the organs reconstructed from the decision ledger.
type OrganHandler struct {
	svc *organ.Service
	log zerolog.Logger
}

func NewOrganHandler(svc *organ.Service, log zerolog.Logger) *OrganHandler {
	return &OrganHandler{svc: svc, log: log}
}

// List godoc
// @Summary      Active organs
// @Tags         organs
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.OrganResponse]
// @Router       /api/organs [get]
func (h *OrganHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.ListActive(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ListResponse[dto.OrganResponse]{Items: list, Total: len(list)})
}

// Get godoc
// @Summary      Organ with its current members
// @Tags         organs
// @Produce      json
// @Param        abbr  path  string  true  "abbreviation"
// @Success      200   {object}  dto.OrganResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/organs/{abbr} [get]
func (h *OrganHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.Get(c.UserContext(), c.Params("abbr"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
