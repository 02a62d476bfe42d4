package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

var (
	positiveColor = color.New(color.FgGreen)
	negativeColor = color.New(color.FgRed)
	levelColor    = color.New(color.FgCyan, color.Bold)
)

// signed colours a score green above zero and red below.
func signed(v float64) string {
	s := formatScore(v)
	switch {
	case v > 0:
		return positiveColor.Sprint(s)
	case v < 0:
		return negativeColor.Sprint(s)
	default:
		return s
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderTable(w io.Writer, headers []string, rows [][]string, align tw.Align) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = align
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeObjectivesTable(w io.Writer, objs []catalog.Objective) error {
	rows := make([][]string, 0, len(objs))
	for _, o := range objs {
		rows = append(rows, []string{o.ID, o.Name, o.Domain})
	}
	return renderTable(w, []string{"ID", "Objective", "Domain"}, rows, tw.AlignLeft)
}

func writeFactorsTable(w io.Writer, factors []catalog.Factor) error {
	rows := make([][]string, 0, len(factors))
	for _, f := range factors {
		items := make([]string, 0, len(f.Items))
		for _, it := range f.Items {
			items = append(items, it.ID)
		}
		rows = append(rows, []string{f.ID, f.Name, string(f.Type), strconv.Itoa(f.Stage), strings.Join(items, ", ")})
	}
	return renderTable(w, []string{"ID", "Factor", "Type", "Stage", "Items"}, rows, tw.AlignLeft)
}

// writeFactorTable prints one factor's scores. total is the percentage split
// of a percentage factor, nil otherwise.
func writeFactorTable(w io.Writer, f catalog.Factor, results []scoring.ScoreResult, total *float64) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", f.ID, f.Name); err != nil {
		return err
	}
	if total != nil {
		line := "total: " + formatScore(*total) + "%"
		if *total != 100 {
			line = negativeColor.Sprint(line + " (does not sum to 100)")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.ObjectiveID,
			formatScore(r.FinalScore),
			formatScore(r.BaselineScore),
			signed(r.RelativeImportance),
		})
	}
	return renderTable(w, []string{"Rank", "Objective", "Score", "Baseline", "Relative importance"}, rows, tw.AlignRight)
}

func writeScopeTable(w io.Writer, stage string, results []scoring.ScoreResult) error {
	headers := []string{"Rank", "Objective", "Domain", "Raw", "Scope"}
	refined := stage == scoring.StageRefined
	if refined {
		headers = append(headers, "Suggested level")
	}
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		row := []string{
			strconv.Itoa(i + 1),
			r.ObjectiveID,
			r.Domain,
			formatScore(r.RawScore),
			signed(r.FinalScore),
		}
		if refined {
			level := ""
			if r.SuggestedCapabilityLevel != nil {
				level = levelColor.Sprint(*r.SuggestedCapabilityLevel)
			}
			row = append(row, level)
		}
		rows = append(rows, row)
	}
	if _, err := fmt.Fprintf(w, "%s scope\n", stage); err != nil {
		return err
	}
	return renderTable(w, headers, rows, tw.AlignRight)
}

func writeFinalTable(w io.Writer, results []scoring.ScoreResult) error {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		override := ""
		if r.OverrideScore != nil {
			override = formatScore(*r.OverrideScore)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.ObjectiveID,
			signed(r.FinalScore),
			override,
			levelColor.Sprint(r.CapabilityLevel),
		})
	}
	return renderTable(w, []string{"Rank", "Objective", "Scope", "Override", "Capability level"}, rows, tw.AlignRight)
}

func writeCanvasTable(w io.Writer, c scoring.Canvas) error {
	rows := make([][]string, 0, len(c.Rows))
	for _, r := range c.Rows {
		rows = append(rows, []string{
			r.ObjectiveID,
			signed(r.InitialScope),
			signed(r.RefinedScope),
			formatScore(r.Adjustment),
			signed(r.ConcludedScope),
			strconv.Itoa(r.SuggestedCapability),
			levelColor.Sprint(r.AgreedCapability),
		})
	}
	return renderTable(w,
		[]string{"Objective", "Initial", "Refined", "Adjustment", "Concluded", "Suggested", "Agreed"},
		rows, tw.AlignRight)
}
