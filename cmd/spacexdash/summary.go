package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"spacexdash/internal/calculator"
	"spacexdash/internal/chart"
	"spacexdash/internal/model"
	"spacexdash/internal/store"
)

var summaryFlags struct {
	site     string
	low      float64
	high     float64
	markdown bool
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the pie and scatter data for a selection",
	RunE:  runSummary,
}

func init() {
	f := summaryCmd.Flags()
	f.StringVar(&summaryFlags.site, "site", model.AllSites, "launch site, or ALL")
	f.Float64Var(&summaryFlags.low, "low", 0, "payload lower bound in kg (default: dataset minimum)")
	f.Float64Var(&summaryFlags.high, "high", 0, "payload upper bound in kg (default: dataset maximum)")
	f.BoolVar(&summaryFlags.markdown, "markdown", false, "render Markdown tables")
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := loadStore(cfg)
	if err != nil {
		return err
	}

	sel := s.InitialSelection()
	sel.Site = summaryFlags.site
	if cmd.Flags().Changed("low") {
		sel.Payload.Low = summaryFlags.low
	}
	if cmd.Flags().Changed("high") {
		sel.Payload.High = summaryFlags.high
	}
	sel.Payload = sel.Payload.Normalize()

	return writeSummary(cmd.OutOrStdout(), s, sel, summaryFlags.markdown)
}

func writeSummary(w io.Writer, s *store.Store, sel model.Selection, markdown bool) error {
	calc := calculator.NewCalculator(s)

	slices := calc.SiteOutcomes(sel.Site)
	pie := newTable()
	pie.SetTitle(chart.PieTitle(sel.Site))
	pie.AppendHeader(table.Row{"Label", "Count"})
	for _, sl := range slices {
		pie.AppendRow(table.Row{sl.Label, sl.Count})
	}
	pie.AppendFooter(table.Row{"Total", calculator.TotalCount(slices)})

	points := calc.PayloadScatter(sel.Site, sel.Payload)
	scatter := newTable()
	scatter.SetTitle(fmt.Sprintf("%s [%v, %v] kg", chart.ScatterTitle(sel.Site), sel.Payload.Low, sel.Payload.High))
	scatter.AppendHeader(table.Row{"Launch Site", "Payload Mass (kg)", "Booster Version Category", "Outcome"})
	scatter.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, p := range points {
		scatter.AppendRow(table.Row{p.LaunchSite, p.PayloadMassKg, p.BoosterVersionCategory, p.OutcomeClass.Label()})
	}
	scatter.AppendFooter(table.Row{"Points", len(points)})

	for _, t := range []table.Writer{pie, scatter} {
		var out string
		if markdown {
			out = t.RenderMarkdown()
		} else {
			out = t.Render()
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", out); err != nil {
			return err
		}
	}
	return nil
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	return t
}
