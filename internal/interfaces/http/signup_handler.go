package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/activity"
	"github.com/gewis/gewisweb-api/internal/application/dto"
)

// SignupHandler exposes signing up and off, participant lists and exports.
type SignupHandler struct {
	svc *activity.Service
	log zerolog.Logger
}

func NewSignupHandler(svc *activity.Service, log zerolog.Logger) *SignupHandler {
	return &SignupHandler{svc: svc, log: log}
}

// Form godoc
// @Summary      Signup form descriptor of a list
// @Tags         signups
// @Produce      json
// @Param        id        path   string  true   "activity id"
// @Param        listId    path   string  true   "signup list id"
// @Param        external  query  bool    false  "include name and email elements"
// @Success      200  {object}  dto.SignupFormResponse
// @Router       /api/activities/{id}/lists/{listId}/form [get]
func (h *SignupHandler) Form(c *fiber.Ctx) error {
	external := c.QueryBool("external", false)
	out, err := h.svc.SignupForm(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Params("listId"), external, GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SignUp godoc
// @Summary      Sign the logged in member up
// @Tags         signups
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "field values keyed by field id"
// @Success      201   {object}  dto.SignupResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/activities/{id}/lists/{listId}/signup [post]
func (h *SignupHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	su, err := h.svc.SignUp(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Params("listId"), in.Values, GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(activity.ToSignupResponse(su))
}

// SignOff godoc
// @Summary      Remove the signup of the logged in member
// @Tags         signups
// @Success      204
// @Router       /api/activities/{id}/lists/{listId}/signoff [post]
func (h *SignupHandler) SignOff(c *fiber.Ctx) error {
	if err := h.svc.SignOff(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Params("listId"), GetLocale(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// External godoc
// @Summary      Sign up someone without membership
// @Tags         signups
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExternalSignupRequest  true  "name, email, values and CAPTCHA answer"
// @Success      201   {object}  dto.SignupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/activities/{id}/lists/{listId}/external [post]
func (h *SignupHandler) External(c *fiber.Ctx) error {
	var in dto.ExternalSignupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	su, err := h.svc.ExternalSignUp(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Params("listId"), in, GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(activity.ToSignupResponse(su))
}

// Participants godoc
// @Summary      Signups of a list (or only their number)
// @Tags         signups
// @Produce      json
// @Success      200  {object}  dto.SignupListParticipantsResponse
// @Router       /api/activities/{id}/lists/{listId}/signups [get]
func (h *SignupHandler) Participants(c *fiber.Ctx) error {
	out, err := h.svc.ListSignups(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Params("listId"), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      PDF of a signup list
// @Tags         signups
// @Produce      application/pdf
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/activities/{id}/lists/{listId}/export.pdf [get]
func (h *SignupHandler) Export(c *fiber.Ctx) error {
	out, err := h.svc.Export(c.UserContext(), GetPrincipal(c), c.Params("id"), c.Params("listId"), GetLocale(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="signups-`+c.Params("listId")+`.pdf"`)
	return c.Send(out)
}

// Captcha godoc
// @Summary      Issue a CAPTCHA challenge for anonymous external signups
// @Tags         signups
// @Produce      json
// @Success      201  {object}  dto.CaptchaResponse
// @Router       /api/captcha [post]
func (h *SignupHandler) Captcha(c *fiber.Ctx) error {
	out, err := h.svc.IssueCaptcha(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
