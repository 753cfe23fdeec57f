package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/launchdash/internal/analytics"
	"github.com/emiliopalmerini/launchdash/internal/app"
	"github.com/emiliopalmerini/launchdash/internal/domain"
	"github.com/emiliopalmerini/launchdash/internal/pkg/tui/components"
	"github.com/emiliopalmerini/launchdash/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/launchdash/internal/render"
	"github.com/emiliopalmerini/launchdash/internal/util"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the dashboard charts as text",
	Long: `Print the success pie and the payload scatter for a filter in the terminal.

Examples:
  launchdash summary                               # All sites, full payload range
  launchdash summary --site "KSC LC-39A"           # One site
  launchdash summary --min 2000 --max 6000         # Payload window`,
	RunE: runSummary,
}

// Flags
var (
	summarySite string
	summaryMin  float64
	summaryMax  float64
)

const barWidth = 30

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summarySite, "site", domain.AllSites, "Launch site, or ALL")
	summaryCmd.Flags().Float64Var(&summaryMin, "min", 0, "Lower payload bound in kg (default: dataset minimum)")
	summaryCmd.Flags().Float64Var(&summaryMax, "max", 0, "Upper payload bound in kg (default: dataset maximum)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ds, err := app.LoadDataset(ctx, cfg)
	if err != nil {
		return err
	}
	svc := analytics.NewService(ds, nil, nil)

	filter := svc.DefaultFilter()
	filter.Site = summarySite
	if cmd.Flags().Changed("min") {
		filter.Payload.Lo = summaryMin
	}
	if cmd.Flags().Changed("max") {
		filter.Payload.Hi = summaryMax
	}

	return writeSummary(ctx, cmd.OutOrStdout(), svc, filter)
}

func writeSummary(ctx context.Context, w io.Writer, svc *analytics.Service, filter domain.FilterState) error {
	pie, err := svc.Pie(ctx, filter.Site)
	if err != nil {
		return err
	}
	sc, err := svc.Scatter(ctx, filter.Site, filter.Payload)
	if err != nil {
		return err
	}

	styles := theme.Default()
	var b strings.Builder

	b.WriteString(styles.Title.Render("SpaceX Launch Records Dashboard"))
	b.WriteString("\n")
	b.WriteString(row(styles, "Records", fmt.Sprintf("%d", svc.Dataset().Len())))
	b.WriteString(row(styles, "Site", filter.Site))
	b.WriteString(row(styles, "Payload", util.FormatKg(filter.Payload.Lo)+" to "+util.FormatKg(filter.Payload.Hi)))
	b.WriteString("\n")

	b.WriteString(styles.Subtitle.Render(pie.Title))
	b.WriteString("\n")
	total := pie.Total()
	if total == 0 {
		b.WriteString(styles.Muted.Render(render.EmptyMessage))
		b.WriteString("\n")
	}
	for _, s := range pie.Slices {
		if s.Value == 0 && total == 0 {
			continue
		}
		label := styles.ForOutcome(s.Label).Render(s.Label)
		b.WriteString(fmt.Sprintf("%s %s %4d  %s\n",
			styles.Label.Render(label),
			components.NewBar(s.Value, total, barWidth).View(),
			s.Value,
			styles.Muted.Render(util.FormatPercent(s.Value, total)),
		))
	}
	b.WriteString("\n")

	b.WriteString(styles.Subtitle.Render(sc.Title))
	b.WriteString("\n")
	if len(sc.Points) == 0 {
		b.WriteString(styles.Muted.Render(render.EmptyMessage))
		b.WriteString("\n")
	}
	for _, cat := range sc.Categories() {
		var success, failure int
		for _, p := range sc.Points {
			if p.BoosterCategory != cat {
				continue
			}
			if p.OutcomeLabel == domain.LabelSuccess {
				success++
			} else {
				failure++
			}
		}
		b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
			styles.Label.Render(cat),
			styles.Success.Render(fmt.Sprintf("%3d %s", success, domain.LabelSuccess)),
			styles.Failure.Render(fmt.Sprintf("%3d %s", failure, domain.LabelFailure)),
			styles.Muted.Render(util.FormatPercent(success, success+failure)),
		))
	}

	_, err = io.WriteString(w, styles.Card.Render(strings.TrimRight(b.String(), "\n"))+"\n")
	return err
}

func row(styles *theme.Styles, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, styles.Label.Render(label), styles.Value.Render(value)) + "\n"
}
