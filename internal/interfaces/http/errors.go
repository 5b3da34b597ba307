package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/application/validation"
	"github.com/gewis/gewisweb-api/internal/domain"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// errorStatus maps domain errors to a status, response code and message key.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrNotAllowed):
		return fiber.StatusForbidden, "NOT_ALLOWED", ""
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", i18n.MsgInvalidCredentials
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", i18n.MsgMembershipExpired
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrMemberNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", i18n.MsgNotFound
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return fiber.StatusConflict, "ALREADY_SIGNED_UP", i18n.MsgAlreadySignedUp
	case errors.Is(err, domain.ErrSignupClosed):
		return fiber.StatusConflict, "SIGNUP_CLOSED", i18n.MsgSignupClosed
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE", i18n.MsgDuplicate
	case errors.Is(err, domain.ErrCaptchaFailed):
		return fiber.StatusBadRequest, "CAPTCHA_FAILED", i18n.MsgCaptchaFailed
	case errors.Is(err, domain.ErrInvalidTransition):
		return fiber.StatusBadRequest, "INVALID_TRANSITION", i18n.MsgInvalidTransition
	case errors.Is(err, domain.ErrUnsupportedLocale), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT", i18n.MsgInvalidInput
	}
	return fiber.StatusInternalServerError, "INTERNAL", i18n.MsgInternal
}

// writeError renders err as JSON. Validation errors become 422 with the field map,
// NotAllowed errors keep their translated message and unexpected errors are logged.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	l := GetLocale(c)

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:   "VALIDATION",
			Fields: verrs,
		})
	}

	status, code, key := errorStatus(err)

	var na *domain.NotAllowedError
	if errors.As(err, &na) {
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: na.Message})
	}
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("request failed")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: i18n.Translate(l, key)})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_BODY",
		Message: i18n.Translate(GetLocale(c), i18n.MsgInvalidBody),
	})
}
