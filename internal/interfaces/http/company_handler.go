package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/company"
	"github.com/gewis/gewisweb-api/internal/application/dto"
)

// CompanyHandler exposes the career pages.
type CompanyHandler struct {
	svc *company.Service
	log zerolog.Logger
}

// NewCompanyHandler builds the company handler.
func NewCompanyHandler(svc *company.Service, log zerolog.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: log}
}

// Create godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "company"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), GetPrincipal(c), in, GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Visible companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.CompanyResponse]
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.ListVisible(c.UserContext(), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ListResponse[dto.CompanyResponse]{Items: list, Total: len(list)})
}

// GetBySlug godoc
// @Summary      Company detail
// @Tags         companies
// @Produce      json
// @Param        slug  path  string  true  "company slug"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{slug} [get]
func (h *CompanyHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.svc.GetBySlug(c.UserContext(), GetPrincipal(c), c.Params("slug"), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AddPackage godoc
// @Summary      Add a package to a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePackageRequest  true  "package"
// @Success      201   {object}  dto.PackageResponse
// @Router       /api/companies/{slug}/packages [post]
func (h *CompanyHandler) AddPackage(c *fiber.Ctx) error {
	var in dto.CreatePackageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.AddPackage(c.UserContext(), GetPrincipal(c), c.Params("slug"), in, GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Jobs godoc
// @Summary      Active jobs, optionally of one category
// @Tags         companies
// @Produce      json
// @Param        category  query  string  false  "category slug"
// @Success      200  {object}  dto.ListResponse[dto.JobResponse]
// @Router       /api/companies/jobs [get]
func (h *CompanyHandler) Jobs(c *fiber.Ctx) error {
	list, err := h.svc.Jobs(c.UserContext(), c.Query("category"), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.ListResponse[dto.JobResponse]{Items: list, Total: len(list)})
}

// Banner returns a random active banner, or 204 when there is none.
func (h *CompanyHandler) Banner(c *fiber.Ctx) error {
	out, err := h.svc.RandomBanner(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(out)
}

// Featured returns the featured company for the request language, or 204.
func (h *CompanyHandler) Featured(c *fiber.Ctx) error {
	out, err := h.svc.Featured(c.UserContext(), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(out)
}

// UnpublishExpired clears the published flag of expired packages and reports how many changed.
func (h *CompanyHandler) UnpublishExpired(c *fiber.Ctx) error {
	n, err := h.svc.UnpublishExpired(c.UserContext(), GetPrincipal(c), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"unpublished": n})
}
