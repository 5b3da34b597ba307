package validation

import (
	"sort"
	"strings"

	"github.com/gewis/gewisweb-api/internal/domain"
)

// Errors maps a field path (json names, e.g. "signupLists[0].closeDate") to its messages.
// It is returned as data so a form can be redisplayed with inline errors.
type Errors map[string][]string

// Add appends msg to field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has reports whether field has at least one message.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Merge copies all messages of o into e, prefixing the field names.
func (e Errors) Merge(prefix string, o Errors) {
	for f, msgs := range o {
		key := f
		if prefix != "" {
			key = prefix + "." + f
		}
		for _, m := range msgs {
			e.Add(key, m)
		}
	}
}

// OrNil returns nil when e is empty so callers can return it as an error.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(strings.Join(e[f], ", "))
	}
	return b.String()
}

// Is makes errors.Is(err, domain.ErrInvalidInput) hold.
func (e Errors) Is(target error) bool {
	return target == domain.ErrInvalidInput
}
