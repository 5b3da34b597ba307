package activity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewis/gewisweb-api/internal/domain/activity"
	"github.com/gewis/gewisweb-api/internal/domain/entity"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func sample() *entity.Activity {
	return &entity.Activity{
		ID:        "a1",
		Name:      i18n.NewText(strPtr("Borrel"), nil),
		Location:  i18n.FromStrings("Bar", "Pub"),
		Costs:     i18n.NewText(strPtr("0"), nil),
		BeginTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
		OrganID:   strPtr("organ-1"),
		Status:    entity.StatusApproved,
		SignupLists: []*entity.SignupList{{
			ID:   "l1",
			Name: i18n.FromStrings("Inschrijving", "Signup"),
			Fields: []*entity.SignupField{{
				ID:           "f1",
				Name:         i18n.FromStrings("Aantal", "Amount"),
				Type:         entity.FieldNumber,
				MinimumValue: intPtr(1),
				MaximumValue: intPtr(3),
			}, {
				ID:   "f2",
				Name: i18n.FromStrings("Eten", "Food"),
				Type: entity.FieldChoice,
				Options: []*entity.SignupOption{
					{ID: "o1", Value: i18n.FromStrings("Vlees", "Meat")},
					{ID: "o2", Value: i18n.FromStrings("Vega", "Veggie")},
				},
			}},
		}},
	}
}

func TestTranslate_FallbackAppliesToWholeGraph(t *testing.T) {
	tr := activity.Translate(sample(), i18n.English)
	require.NotNil(t, tr)

	assert.Equal(t, i18n.Dutch, tr.Locale, "no English name: fall back to Dutch")
	assert.Equal(t, "Borrel", tr.Name)
	assert.Equal(t, "Bar", tr.Location, "location uses the activity-level decision, not its own English value")
	require.Len(t, tr.SignupLists, 1)
	assert.Equal(t, "Inschrijving", tr.SignupLists[0].Name)
	assert.Equal(t, "Aantal", tr.SignupLists[0].Fields[0].Name)
	assert.Equal(t, "Vlees", tr.SignupLists[0].Fields[1].Options[0].Value)
}

func TestTranslate_PreferredLanguageWhenNamePresent(t *testing.T) {
	a := sample()
	a.Name = i18n.FromStrings("Borrel", "Drinks")

	tr := activity.Translate(a, i18n.English)
	assert.Equal(t, i18n.English, tr.Locale)
	assert.Equal(t, "Drinks", tr.Name)
	assert.Equal(t, "Pub", tr.Location)
	assert.Equal(t, "", tr.Costs, "no per-field fallback once the language is chosen")
	assert.Equal(t, "Veggie", tr.SignupLists[0].Fields[1].Options[1].Value)
}

func TestTranslate_IsDisconnectedFromSource(t *testing.T) {
	a := sample()
	tr := activity.Translate(a, i18n.Dutch)

	*tr.SignupLists[0].Fields[0].MaximumValue = 100
	*tr.OrganID = "other"
	tr.SignupLists[0].Fields[1].Options[0].Value = "changed"

	assert.Equal(t, 3, *a.SignupLists[0].Fields[0].MaximumValue)
	assert.Equal(t, "organ-1", *a.OrganID)
	assert.Equal(t, "Vlees", a.SignupLists[0].Fields[1].Options[0].Value.String(i18n.Dutch))
}

func TestTranslate_Nil(t *testing.T) {
	assert.Nil(t, activity.Translate(nil, i18n.Dutch))
}
