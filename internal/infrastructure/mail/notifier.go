// Package mail sends the notifications raised by the activity service.
package mail

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/gewis/gewisweb-api/internal/application/ports"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// Message is a rendered plain-text mail.
type Message struct {
	Subject string
	Body    string
}

// ActivityCreatedMessage renders the mail sent to the board when an activity awaits approval.
// The board reads Dutch, so the Dutch texts are preferred.
func ActivityCreatedMessage(a *entity.Activity, creator *entity.Member) Message {
	name := a.Name.String(i18n.Dutch)
	var b strings.Builder
	fmt.Fprintf(&b, "Er is een nieuwe activiteit aangemaakt die wacht op goedkeuring.\n\n")
	fmt.Fprintf(&b, "Naam: %s\n", name)
	fmt.Fprintf(&b, "Begin: %s\n", a.BeginTime.Format("02-01-2006 15:04"))
	fmt.Fprintf(&b, "Einde: %s\n", a.EndTime.Format("02-01-2006 15:04"))
	if loc := a.Location.String(i18n.Dutch); loc != "" {
		fmt.Fprintf(&b, "Locatie: %s\n", loc)
	}
	if a.OrganID != nil {
		fmt.Fprintf(&b, "Orgaan: %s\n", *a.OrganID)
	}
	if creator != nil {
		fmt.Fprintf(&b, "Aangemaakt door: %s (%d)\n", creator.FullName(), creator.LidNr)
	}
	fmt.Fprintf(&b, "Inschrijflijsten: %d\n", len(a.SignupLists))
	return Message{
		Subject: "Nieuwe activiteit: " + name,
		Body:    b.String(),
	}
}

var _ ports.Notifier = (*SendGridNotifier)(nil)

// SendGridNotifier delivers notifications through the SendGrid v3 API.
type SendGridNotifier struct {
	key  string
	from *sgmail.Email
	to   *sgmail.Email
	log  zerolog.Logger
}

func NewSendGridNotifier(key, from, to string, log zerolog.Logger) *SendGridNotifier {
	return &SendGridNotifier{
		key:  key,
		from: sgmail.NewEmail("GEWIS", from),
		to:   sgmail.NewEmail("", to),
		log:  log,
	}
}

func (n *SendGridNotifier) ActivityCreated(_ context.Context, a *entity.Activity, creator *entity.Member) error {
	msg := ActivityCreatedMessage(a, creator)

	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(n.to)

	m := sgmail.NewV3Mail()
	m.SetFrom(n.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Body))

	req := sendgrid.GetRequest(n.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("send activity mail: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("send activity mail: status %d: %s", res.StatusCode, res.Body)
	}
	n.log.Debug().Str("activity_id", a.ID).Msg("activity created mail sent")
	return nil
}

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to the log. Used when no SendGrid key is configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ActivityCreated(_ context.Context, a *entity.Activity, creator *entity.Member) error {
	msg := ActivityCreatedMessage(a, creator)
	n.log.Info().Str("activity_id", a.ID).Str("subject", msg.Subject).Msg("activity created notification")
	return nil
}
