package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

// RouterDeps groups the handlers and settings needed to register the routes.
type RouterDeps struct {
	Activities    *ActivityHandler
	Signups       *SignupHandler
	Kiosk         *KioskHandler
	Companies     *CompanyHandler
	Organs        *OrganHandler
	Auth          *AuthHandler
	JWTSecret     string
	DefaultLocale i18n.Locale
}

// Router registers the API routes. Every route runs the locale and auth middleware;
// the auth middleware lets guests through and the services decide what guests may do.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", LocaleMiddleware(deps.DefaultLocale), AuthMiddleware(deps.JWTSecret))

	api.Post("/auth/login", deps.Auth.Login)
	api.Post("/captcha", deps.Signups.Captcha)

	// Kiosk (public, cached)
	api.Get("/activity_api/list", deps.Kiosk.List)

	activities := api.Group("/activities")
	activities.Get("/", deps.Activities.Upcoming)
	activities.Post("/", deps.Activities.Create)
	activities.Get("/unapproved", deps.Activities.ByStatus(entity.StatusToApprove))
	activities.Get("/approved", deps.Activities.ByStatus(entity.StatusApproved))
	activities.Get("/disapproved", deps.Activities.ByStatus(entity.StatusDisapproved))
	activities.Get("/archive", deps.Activities.Archive)
	activities.Get("/archive/:year", deps.Activities.Archive)
	activities.Get("/feed.atom", deps.Activities.Feed)
	activities.Get("/:id", deps.Activities.Get)

	invalidate := invalidateKiosk(deps.Kiosk)
	activities.Post("/:id/approve", invalidate, deps.Activities.Approve)
	activities.Post("/:id/disapprove", invalidate, deps.Activities.Disapprove)
	activities.Post("/:id/reset", invalidate, deps.Activities.Reset)

	lists := activities.Group("/:id/lists/:listId")
	lists.Get("/form", deps.Signups.Form)
	lists.Post("/signup", RequireMember(), deps.Signups.SignUp)
	lists.Post("/signoff", RequireMember(), deps.Signups.SignOff)
	lists.Post("/external", deps.Signups.External)
	lists.Get("/signups", deps.Signups.Participants)
	lists.Get("/export.pdf", deps.Signups.Export)

	companies := api.Group("/companies")
	companies.Get("/", deps.Companies.List)
	companies.Post("/", deps.Companies.Create)
	companies.Get("/jobs", deps.Companies.Jobs)
	companies.Get("/banner", deps.Companies.Banner)
	companies.Get("/featured", deps.Companies.Featured)
	companies.Post("/packages/unpublish-expired", deps.Companies.UnpublishExpired)
	companies.Get("/:slug", deps.Companies.GetBySlug)
	companies.Post("/:slug/packages", deps.Companies.AddPackage)

	organs := api.Group("/organs")
	organs.Get("/", deps.Organs.List)
	organs.Get("/:abbr", deps.Organs.Get)
}

// invalidateKiosk drops the kiosk cache after a successful status change.
func invalidateKiosk(k *KioskHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil && c.Response().StatusCode() < fiber.StatusBadRequest && k != nil {
			k.Invalidate()
		}
		return err
	}
}
