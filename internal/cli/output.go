package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"trainctl/internal/app"
	"trainctl/internal/journey"
	"trainctl/internal/tui/view"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates the value of an --output flag.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatText, OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, table, json or yaml)", s)
	}
}

// JourneyRecord is the serialised form of one journey.
type JourneyRecord struct {
	Departure string `json:"departure" yaml:"departure"`
	Arrival   string `json:"arrival" yaml:"arrival"`
	Duration  int64  `json:"duration" yaml:"duration"`
}

// PlanRecord is the serialised form of one fetched plan.
type PlanRecord struct {
	Title    string          `json:"title" yaml:"title"`
	From     string          `json:"from" yaml:"from"`
	To       string          `json:"to" yaml:"to"`
	Journeys []JourneyRecord `json:"journeys" yaml:"journeys"`
	Error    string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewPlanRecord converts a fetch result. Journeys keep their raw provider
// timestamps so the output can be fed back into other tools.
func NewPlanRecord(r app.PlanResult) PlanRecord {
	rec := PlanRecord{
		Title:    r.Plan.Title(),
		From:     r.Plan.From,
		To:       r.Plan.To,
		Journeys: make([]JourneyRecord, 0, len(r.Journeys)),
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	for _, j := range r.Journeys {
		rec.Journeys = append(rec.Journeys, JourneyRecord{
			Departure: j.DepartureDateTime(),
			Arrival:   j.ArrivalDateTime(),
			Duration:  j.Duration(),
		})
	}
	return rec
}

// Printer writes fetch results in one output format.
type Printer struct {
	out    io.Writer
	format OutputFormat
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat) *Printer {
	return &Printer{out: out, format: format}
}

// Print writes every result. Failed plans are part of the output; the caller
// decides the exit status.
func (p *Printer) Print(results []app.PlanResult) error {
	switch p.format {
	case OutputFormatText:
		return p.printText(results)
	case OutputFormatTable:
		return p.printTable(results)
	case OutputFormatJSON:
		return p.printJSON(results)
	case OutputFormatYAML:
		return p.printYAML(results)
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func (p *Printer) records(results []app.PlanResult) []PlanRecord {
	records := make([]PlanRecord, 0, len(results))
	for _, r := range results {
		records = append(records, NewPlanRecord(r))
	}
	return records
}

func (p *Printer) printText(results []app.PlanResult) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(p.out)
		}
		fmt.Fprintln(p.out, r.Plan.Title())
		switch {
		case r.Err != nil:
			fmt.Fprintf(p.out, "  Error: %v\n", r.Err)
		case len(r.Journeys) == 0:
			fmt.Fprintln(p.out, "  No journeys found")
		default:
			for _, j := range r.Journeys {
				fmt.Fprintf(p.out, "  %s\n", view.FormatJourney(j))
			}
		}
	}
	return nil
}

// printTable renders one rounded table per plan
func (p *Printer) printTable(results []app.PlanResult) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(p.out)
		}

		t := table.NewWriter()
		t.SetOutputMirror(p.out)
		t.SetStyle(table.StyleRounded)
		t.SetTitle(r.Plan.Title())
		t.AppendHeader(table.Row{
			text.FgHiCyan.Sprint("DEPARTURE"),
			text.FgHiCyan.Sprint("ARRIVAL"),
			text.FgHiCyan.Sprint("DURATION"),
		})

		switch {
		case r.Err != nil:
			msg := text.FgRed.Sprint("❌ " + r.Err.Error())
			t.AppendRow(table.Row{msg, msg, msg}, table.RowConfig{AutoMerge: true})
		case len(r.Journeys) == 0:
			msg := text.FgYellow.Sprint("No journeys found")
			t.AppendRow(table.Row{msg, msg, msg}, table.RowConfig{AutoMerge: true})
		default:
			for _, j := range r.Journeys {
				t.AppendRow(journeyRow(j))
			}
		}
		t.Render()
	}
	return nil
}

func journeyRow(j journey.Journey) table.Row {
	dep, arr := "--:--", "--:--"
	if t, err := j.Departure(); err == nil {
		dep = t.Format("15:04")
	}
	if t, err := j.Arrival(); err == nil {
		arr = t.Format("15:04")
	}
	return table.Row{dep, arr, view.FormatDuration(j.Duration())}
}

func (p *Printer) printJSON(results []app.PlanResult) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.records(results)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (p *Printer) printYAML(results []app.PlanResult) error {
	data, err := yaml.Marshal(p.records(results))
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = p.out.Write(data)
	return err
}
