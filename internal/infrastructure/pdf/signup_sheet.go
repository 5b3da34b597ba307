// Package pdf renders signup lists as printable attendance sheets.
//
// Page layout (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: activity name + list name  │  date and location    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: # | Name | field 1 | field 2 | ...                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: participant count + generation time                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gewis/gewisweb-api/internal/application/ports"
	"github.com/gewis/gewisweb-api/internal/domain/i18n"
)

var (
	colorPrimary = &props.Color{Red: 213, Green: 0, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Each table column gets this many grid units; the number column gets one.
const columnUnits = 4

var _ ports.SignupExporter = (*SignupSheetGenerator)(nil)

// SignupSheetGenerator implements ports.SignupExporter with Maroto v2.
type SignupSheetGenerator struct{}

func NewSignupSheetGenerator() *SignupSheetGenerator { return &SignupSheetGenerator{} }

// Export renders the sheet and returns the PDF bytes.
func (g *SignupSheetGenerator) Export(_ context.Context, sheet ports.SignupSheet) ([]byte, error) {
	grid := 1 + columnUnits*max(len(sheet.Columns), 1)
	orient := orientation.Vertical
	if len(sheet.Columns) > 4 {
		orient = orientation.Horizontal
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orient).
		WithMaxGridSize(grid).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(sheet.ActivityName+" - "+sheet.ListName, true).
		WithAuthor("GEWIS", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet, grid))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow(sheet.Columns))
	m.AddRows(tableRows(sheet.Rows, len(sheet.Columns))...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(sheet, grid))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate signup sheet: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(sheet ports.SignupSheet, grid int) core.Row {
	left := grid / 2
	when := sheet.BeginTime.Format("02-01-2006 15:04") + " - " + sheet.EndTime.Format("15:04")
	if sheet.BeginTime.YearDay() != sheet.EndTime.YearDay() || sheet.BeginTime.Year() != sheet.EndTime.Year() {
		when = sheet.BeginTime.Format("02-01-2006 15:04") + " - " + sheet.EndTime.Format("02-01-2006 15:04")
	}
	return row.New(18).Add(
		col.New(left).Add(
			text.New(sheet.ActivityName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(sheet.ListName, props.Text{Size: 10, Top: 9}),
		),
		col.New(grid-left).Add(
			text.New(when, props.Text{Size: 9, Align: align.Right, Top: 2, Color: colorGray}),
			text.New(sheet.Location, props.Text{Size: 9, Align: align.Right, Top: 8, Color: colorGray}),
		),
	)
}

func tableHeaderRow(columns []string) core.Row {
	r := row.New(8).Add(col.New(1).Add(text.New("#", props.Text{
		Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 2,
	})))
	for _, c := range columns {
		r.Add(col.New(columnUnits).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableRows(rows [][]string, width int) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for i, cells := range rows {
		r := row.New(7).Add(col.New(1).Add(text.New(strconv.Itoa(i+1), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})))
		for j := 0; j < width; j++ {
			v := ""
			if j < len(cells) {
				v = cells[j]
			}
			r.Add(col.New(columnUnits).Add(text.New(v, props.Text{Size: 8, Top: 1, Left: 1, Right: 1})))
		}
		out = append(out, r)
	}
	return out
}

func footerRow(sheet ports.SignupSheet, grid int) core.Row {
	count := fmt.Sprintf("%d aanmeldingen", len(sheet.Rows))
	generated := "Gegenereerd op "
	if sheet.Locale == i18n.English {
		count = fmt.Sprintf("%d signups", len(sheet.Rows))
		generated = "Generated at "
	}
	left := grid / 2
	return row.New(8).Add(
		col.New(left).Add(text.New(count, props.Text{Style: fontstyle.Bold, Size: 8, Top: 2})),
		col.New(grid-left).Add(text.New(generated+sheet.GeneratedAt.Format("02-01-2006 15:04"), props.Text{
			Size: 7, Align: align.Right, Top: 2, Color: colorGray,
		})),
	)
}
