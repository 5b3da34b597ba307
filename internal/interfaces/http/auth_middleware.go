package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gewis/gewisweb-api/internal/application/dto"
	"github.com/gewis/gewisweb-api/internal/domain/acl"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
	"github.com/gewis/gewisweb-api/pkg/jwt"
)

// Locals keys.
const (
	LocalPrincipal = "principal"
	LocalLocale    = "locale"
)

// AuthMiddleware resolves the acting principal. A request without Authorization header
// continues as guest; a malformed or invalid token is rejected with 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			c.Locals(LocalPrincipal, acl.Guest)
			return c.Next()
		}
		l := GetLocale(c)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: i18n.Translate(l, i18n.MsgInvalidToken)})
		}
		lidnr, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: i18n.Translate(l, i18n.MsgInvalidToken)})
		}
		c.Locals(LocalPrincipal, acl.Principal{MemberID: lidnr, Role: acl.Role(role)})
		return c.Next()
	}
}

// RequireMember rejects guests with 401. Use after AuthMiddleware.
func RequireMember() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetPrincipal(c).IsGuest() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: i18n.Translate(GetLocale(c), i18n.MsgGuestSignup),
			})
		}
		return c.Next()
	}
}

// GetPrincipal returns the principal set by AuthMiddleware, or the guest.
func GetPrincipal(c *fiber.Ctx) acl.Principal {
	p, ok := c.Locals(LocalPrincipal).(acl.Principal)
	if !ok {
		return acl.Guest
	}
	return p
}
