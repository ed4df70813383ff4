// Package pdf generates the project scope document handed to a visitor after
// building a quote, using maroto/v2.
package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// FileName is the download name of the generated document.
const FileName = "PXPLabs-ProjectScope.pdf"

// ── Colour palette ──────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 17, Green: 24, Blue: 39}    // near-black
	colorSecondary = &props.Color{Red: 107, Green: 114, Blue: 128} // gray-500
	colorAccent    = &props.Color{Red: 124, Green: 58, Blue: 237}  // violet-600
	colorTableHead = &props.Color{Red: 241, Green: 245, Blue: 249} // slate-100
	colorTableAlt  = &props.Color{Red: 249, Green: 250, Blue: 251} // gray-50
	colorGreen     = &props.Color{Red: 22, Green: 163, Blue: 74}   // green-600
	colorBorder    = &props.Color{Red: 226, Green: 232, Blue: 240} // slate-200
)

// ── Data struct ─────────────────────────────────────────────────────────

// ScopeItem is one selected service on the document.
type ScopeItem struct {
	CategoryLabel string
	ServiceLabel  string
	Price         int64 // ignored when Custom is set on the document
}

// ProjectScopeData holds everything needed to render the scope document.
type ProjectScopeData struct {
	StudioName   string
	CustomerName string // blank renders as "Guest"
	GeneratedAt  time.Time

	Items []ScopeItem

	// Totals; zero and unused when Custom is true.
	Custom      bool
	Subtotal    int64
	DiscountBps int64
	Discount    int64
	Total       int64

	// FormatAmount renders a rupee amount; defaults to a plain formatter.
	FormatAmount func(int64) string
}

// GenerateProjectScope renders the scope document and returns the PDF bytes.
// At least one item is required; the caller validates the selection first.
func GenerateProjectScope(data ProjectScopeData) ([]byte, error) {
	if len(data.Items) == 0 {
		return nil, fmt.Errorf("project scope requires at least one service")
	}
	if data.FormatAmount == nil {
		data.FormatAmount = func(amount int64) string {
			return fmt.Sprintf("Rs. %d", amount)
		}
	}

	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(buildFooter(data)); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	m.AddRows(buildHeader(data)...)
	m.AddRows(row.New(1).WithStyle(&props.Cell{
		BorderType:  border.Bottom,
		BorderColor: colorBorder,
	}))
	m.AddRows(row.New(6)) // spacer

	m.AddRows(buildMetaBlock(data)...)
	m.AddRows(row.New(6))

	m.AddRows(buildItemsTable(data)...)
	m.AddRows(row.New(4))

	if data.Custom {
		m.AddRows(buildCustomNote()...)
	} else {
		m.AddRows(buildTotalsBlock(data)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// ── Header ──────────────────────────────────────────────────────────────

func buildHeader(data ProjectScopeData) []core.Row {
	return []core.Row{
		row.New(20).Add(
			col.New(6).Add(
				text.New(data.StudioName, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Color: colorPrimary,
					Top:   3,
				}),
			),
			col.New(6).Add(
				text.New("PROJECT SCOPE", props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: colorAccent,
				}),
				text.New(data.GeneratedAt.Format("02 Jan 2006 15:04"), props.Text{
					Size:  9,
					Align: align.Right,
					Color: colorSecondary,
					Top:   11,
				}),
			),
		),
	}
}

// ── Meta block ──────────────────────────────────────────────────────────

func buildMetaBlock(data ProjectScopeData) []core.Row {
	customer := data.CustomerName
	if customer == "" {
		customer = "Guest"
	}

	return []core.Row{
		row.New(5).Add(
			col.New(12).Add(text.New("PREPARED FOR", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Color: colorAccent,
			})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(customer, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Color: colorPrimary,
			})),
		),
	}
}

// ── Items table ─────────────────────────────────────────────────────────

func buildItemsTable(data ProjectScopeData) []core.Row {
	var rows []core.Row

	rows = append(rows, row.New(7).Add(
		col.New(12).Add(text.New("SELECTED SERVICES", props.Text{
			Size:  8,
			Style: fontstyle.Bold,
			Color: colorAccent,
		})),
	))

	headerStyle := props.Text{Size: 7.5, Style: fontstyle.Bold, Color: colorPrimary, Top: 1.5}
	headerStyleRight := props.Text{Size: 7.5, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right, Top: 1.5}

	header := row.New(7).Add(
		col.New(4).Add(text.New("Category", headerStyle)),
		col.New(5).Add(text.New("Service", headerStyle)),
		col.New(3).Add(text.New("Price", headerStyleRight)),
	)
	if data.Custom {
		header = row.New(7).Add(
			col.New(4).Add(text.New("Category", headerStyle)),
			col.New(8).Add(text.New("Service", headerStyle)),
		)
	}
	rows = append(rows, header.WithStyle(&props.Cell{
		BackgroundColor: colorTableHead,
		BorderType:      border.Bottom,
		BorderColor:     colorBorder,
	}))

	for i, item := range data.Items {
		rows = append(rows, buildItemRow(data, item, i))
	}

	return rows
}

func buildItemRow(data ProjectScopeData, item ScopeItem, idx int) core.Row {
	normalStyle := props.Text{Size: 8, Color: colorPrimary, Top: 1}
	mutedStyle := props.Text{Size: 8, Color: colorSecondary, Top: 1}
	rightStyle := props.Text{Size: 8, Color: colorPrimary, Align: align.Right, Top: 1}

	var r core.Row
	if data.Custom {
		r = row.New(7).Add(
			col.New(4).Add(text.New(item.CategoryLabel, mutedStyle)),
			col.New(8).Add(text.New(item.ServiceLabel, normalStyle)),
		)
	} else {
		r = row.New(7).Add(
			col.New(4).Add(text.New(item.CategoryLabel, mutedStyle)),
			col.New(5).Add(text.New(item.ServiceLabel, normalStyle)),
			col.New(3).Add(text.New(data.FormatAmount(item.Price), rightStyle)),
		)
	}

	if idx%2 == 0 {
		r.WithStyle(&props.Cell{BackgroundColor: colorTableAlt})
	}

	return r
}

// ── Totals block ────────────────────────────────────────────────────────

func buildTotalsBlock(data ProjectScopeData) []core.Row {
	var rows []core.Row

	rows = append(rows, row.New(1).WithStyle(&props.Cell{
		BorderType:  border.Bottom,
		BorderColor: colorBorder,
	}))
	rows = append(rows, row.New(3))

	labelStyle := props.Text{Size: 9, Color: colorSecondary, Align: align.Right}
	valueStyle := props.Text{Size: 9, Color: colorPrimary, Align: align.Right}

	rows = append(rows, row.New(6).Add(
		col.New(9).Add(text.New("Subtotal", labelStyle)),
		col.New(3).Add(text.New(data.FormatAmount(data.Subtotal), valueStyle)),
	))

	if data.Discount > 0 {
		label := fmt.Sprintf("Discount (%d%%)", data.DiscountBps/100)
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New(label, labelStyle)),
			col.New(3).Add(text.New("-"+data.FormatAmount(data.Discount), props.Text{
				Size:  9,
				Color: colorGreen,
				Align: align.Right,
			})),
		))
	}

	rows = append(rows, row.New(2))
	rows = append(rows, row.New(10).Add(
		col.New(9).Add(text.New("TOTAL", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Color: colorPrimary,
			Align: align.Right,
			Top:   2,
		})),
		col.New(3).Add(text.New(data.FormatAmount(data.Total), props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Color: colorPrimary,
			Align: align.Right,
			Top:   2,
		})),
	).WithStyle(&props.Cell{
		BackgroundColor: colorTableHead,
		BorderType:      border.Full,
		BorderColor:     colorBorder,
	}))

	return rows
}

// ── Custom-quote note ───────────────────────────────────────────────────

func buildCustomNote() []core.Row {
	return []core.Row{
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorBorder,
		}),
		row.New(3),
		row.New(6).Add(
			col.New(12).Add(text.New(
				"Every project is priced individually. We will follow up with a tailored quote for the services above.",
				props.Text{Size: 8, Color: colorSecondary},
			)),
		),
	}
}

// ── Footer (registered — repeats on every page) ─────────────────────────

func buildFooter(data ProjectScopeData) core.Row {
	footerText := data.StudioName + "  ·  Auto-generated scope document for review purposes. Final pricing may vary after consultation."

	return row.New(10).Add(
		col.New(12).Add(
			text.New(footerText, props.Text{
				Size:  6.5,
				Color: colorSecondary,
				Align: align.Center,
				Top:   4,
			}),
		),
	).WithStyle(&props.Cell{
		BorderType:  border.Top,
		BorderColor: colorBorder,
	})
}
