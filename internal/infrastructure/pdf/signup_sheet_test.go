package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewis/gewisweb-api/internal/application/ports"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

func sheet(columns int) ports.SignupSheet {
	begin := time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)
	cols := []string{"Naam"}
	for i := 1; i < columns; i++ {
		cols = append(cols, "Veld")
	}
	row := make([]string, len(cols))
	for i := range row {
		row[i] = "x"
	}
	return ports.SignupSheet{
		Locale:       i18n.Dutch,
		ActivityName: "Borrel",
		ListName:     "Deelnemers",
		Location:     "MetaForum",
		BeginTime:    begin,
		EndTime:      begin.Add(4 * time.Hour),
		Columns:      cols,
		Rows:         [][]string{row, row[:1]},
		GeneratedAt:  begin.Add(-time.Hour),
	}
}

func TestSignupSheetGenerator_Export(t *testing.T) {
	g := NewSignupSheetGenerator()

	for _, n := range []int{1, 3, 7} {
		out, err := g.Export(context.Background(), sheet(n))
		require.NoError(t, err)
		assert.True(t, len(out) > 4)
		assert.Equal(t, "%PDF", string(out[:4]))
	}
}

func TestSignupSheetGenerator_EmptyList(t *testing.T) {
	s := sheet(2)
	s.Rows = nil
	s.Locale = i18n.English

	out, err := NewSignupSheetGenerator().Export(context.Background(), s)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
