package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for user-facing domain messages.
const (
	MsgNotAllowedCreateActivity     = "not_allowed.activity.create"
	MsgNotAllowedApproveActivity    = "not_allowed.activity.approve"
	MsgNotAllowedDisapproveActivity = "not_allowed.activity.disapprove"
	MsgNotAllowedResetActivity      = "not_allowed.activity.reset"
	MsgNotAllowedViewUnapproved     = "not_allowed.activity.view_unapproved"
	MsgNotAllowedViewApproved       = "not_allowed.activity.view_approved"
	MsgNotAllowedViewDisapproved    = "not_allowed.activity.view_disapproved"
	MsgNotAllowedViewUpcoming       = "not_allowed.activity.view_upcoming"
	MsgNotAllowedViewParticipants   = "not_allowed.activity.view_participants"
	MsgNotAllowedExport             = "not_allowed.activity.export"
	MsgNotAllowedExternalSignup     = "not_allowed.signup.external"
	MsgNotAllowedCompany            = "not_allowed.company.edit"
	MsgNotAllowedViewHiddenCompany  = "not_allowed.company.view_hidden"
	MsgNotAllowedSweep              = "not_allowed.package.sweep"
	MsgAlreadySignedUp              = "signup.already"
	MsgSignupClosed                 = "signup.closed"
	MsgGuestSignup                  = "signup.guest"
	MsgCaptchaFailed                = "signup.captcha"
	MsgNotFound                     = "error.not_found"
	MsgInvalidCredentials           = "error.invalid_credentials"
	MsgMembershipExpired            = "error.membership_expired"
	MsgInvalidToken                 = "error.invalid_token"
	MsgInvalidBody                  = "error.invalid_body"
	MsgInvalidInput                 = "error.invalid_input"
	MsgValidation                   = "error.validation"
	MsgInvalidTransition            = "error.invalid_transition"
	MsgDuplicate                    = "error.duplicate"
	MsgInternal                     = "error.internal"
)

var texts = map[string][2]string{
	MsgNotAllowedCreateActivity:     {"Je mag geen activiteiten aanmaken", "You are not allowed to create an activity"},
	MsgNotAllowedApproveActivity:    {"Je mag geen activiteiten goedkeuren", "You are not allowed to change the status of the activity"},
	MsgNotAllowedDisapproveActivity: {"Je mag geen activiteiten afkeuren", "You are not allowed to change the status of the activity"},
	MsgNotAllowedResetActivity:      {"Je mag de status van activiteiten niet terugzetten", "You are not allowed to change the status of the activity"},
	MsgNotAllowedViewUnapproved:     {"Je mag niet goedgekeurde activiteiten niet bekijken", "You are not allowed to view unapproved activities"},
	MsgNotAllowedViewApproved:       {"Je mag goedgekeurde activiteiten niet bekijken", "You are not allowed to view approved activities"},
	MsgNotAllowedViewDisapproved:    {"Je mag afgekeurde activiteiten niet bekijken", "You are not allowed to view disapproved activities"},
	MsgNotAllowedViewUpcoming:       {"Je mag aankomende activiteiten niet bekijken", "You are not allowed to view upcoming activities"},
	MsgNotAllowedViewParticipants:   {"Je mag de inschrijvingen niet bekijken", "You are not allowed to view the subscriptions"},
	MsgNotAllowedExport:             {"Je mag deze inschrijflijst niet exporteren", "You are not allowed to export this sign-up list"},
	MsgNotAllowedExternalSignup:     {"Alleen GEWIS-leden mogen zich voor deze lijst inschrijven", "Only GEWIS members may sign up for this list"},
	MsgNotAllowedCompany:            {"Je mag bedrijven niet bewerken", "You are not allowed to edit companies"},
	MsgNotAllowedViewHiddenCompany:  {"Je mag verborgen bedrijven niet bekijken", "You are not allowed to view hidden companies"},
	MsgNotAllowedSweep:              {"Je mag verlopen pakketten niet depubliceren", "You are not allowed to unpublish expired packages"},
	MsgAlreadySignedUp:              {"Je bent al ingeschreven voor deze lijst", "You are already signed up for this list"},
	MsgSignupClosed:                 {"Deze inschrijflijst is niet geopend", "This sign-up list is not open"},
	MsgGuestSignup:                  {"Je moet ingelogd zijn om je in te schrijven", "You need to be logged in to sign up"},
	MsgCaptchaFailed:                {"De CAPTCHA is onjuist beantwoord", "The CAPTCHA was answered incorrectly"},
	MsgNotFound:                     {"Niet gevonden", "Not found"},
	MsgInvalidCredentials:           {"Onjuist e-mailadres of wachtwoord", "Invalid email address or password"},
	MsgMembershipExpired:            {"Je lidmaatschap is verlopen", "Your membership has expired"},
	MsgInvalidToken:                 {"Ongeldig of verlopen token", "Invalid or expired token"},
	MsgInvalidBody:                  {"Ongeldige aanvraag", "Invalid request body"},
	MsgInvalidInput:                 {"Ongeldige invoer", "Invalid input"},
	MsgValidation:                   {"Het formulier bevat fouten", "The form contains errors"},
	MsgInvalidTransition:            {"Deze statuswijziging is niet toegestaan", "This status change is not allowed"},
	MsgDuplicate:                    {"Bestaat al", "Already exists"},
	MsgInternal:                     {"Er is iets misgegaan", "Something went wrong"},
}

var cat = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, t := range texts {
		_ = b.SetString(language.Dutch, key, t[0])
		_ = b.SetString(language.English, key, t[1])
	}
	return b
}

// Printer returns a message printer for l backed by the domain catalog.
func Printer(l Locale) *message.Printer {
	return message.NewPrinter(l.Tag(), message.Catalog(cat))
}

// Translate returns the message for key in l.
func Translate(l Locale, key string) string {
	return Printer(l).Sprintf(key)
}
