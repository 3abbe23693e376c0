package view

import (
	"fmt"
	"strings"
	"time"

	"trainctl/internal/color"
	"trainctl/internal/journey"
	"trainctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FormatJourney renders one journey as "HH:mm → HH:mm  duration".
func FormatJourney(j journey.Journey) string {
	return fmt.Sprintf("%s → %s  %s", clock(j.Departure()), clock(j.Arrival()), FormatDuration(j.Duration()))
}

// FormatJourneys renders a list one journey per line, for copying.
func FormatJourneys(title string, list journey.List) string {
	lines := make([]string, 0, len(list)+1)
	lines = append(lines, title)
	for _, j := range list {
		lines = append(lines, FormatJourney(j))
	}
	return strings.Join(lines, "\n")
}

// FormatDuration renders seconds as "19 min" or "1h05".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		return "?"
	}
	d := time.Duration(seconds) * time.Second
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh%02d", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

func clock(t time.Time, err error) string {
	if err != nil {
		return "--:--"
	}
	return t.Format("15:04")
}

func renderScheduleDialog(m *model.Model, d *model.ScheduleDialog) string {
	style := color.DialogStyle
	bounds := d.Bounds
	innerWidth := max(bounds.Width-style.GetHorizontalFrameSize(), 0)
	innerHeight := max(bounds.Height-style.GetVerticalFrameSize(), 0)

	lines := []string{
		color.DialogTitleStyle.Render(runewidth.Truncate(m.TileLabel, innerWidth, "…")),
		color.DialogSubtitleStyle.Render(runewidth.Truncate(d.CurrentPlan().Title(), innerWidth, "…")),
		"",
	}

	// Title, subtitle, blank line, blank line and help footer.
	rows := max(innerHeight-5, 1)
	switch {
	case d.Err != nil:
		lines = append(lines, color.DialogErrorStyle.Render(runewidth.Truncate("Error: "+d.Err.Error(), innerWidth, "…")))
	case d.Loading:
		lines = append(lines, m.Spinner.View()+" Loading journeys…")
	case len(d.Journeys) == 0:
		lines = append(lines, color.DialogHintStyle.Render("No journeys found"))
	default:
		for i, j := range d.Journeys {
			if i == rows {
				break
			}
			lines = append(lines, renderJourneyRow(j, innerWidth))
		}
	}

	for len(lines) < innerHeight-2 {
		lines = append(lines, "")
	}
	footer := m.Help
	footer.Width = innerWidth
	lines = append(lines, "", footer.View(m.DialogKeys))

	return style.
		Width(max(bounds.Width-style.GetHorizontalBorderSize(), 0)).
		Height(max(bounds.Height-style.GetVerticalBorderSize(), 0)).
		MaxWidth(bounds.Width).
		MaxHeight(bounds.Height).
		Render(strings.Join(lines, "\n"))
}

func renderJourneyRow(j journey.Journey, width int) string {
	times := fmt.Sprintf("%s → %s", clock(j.Departure()), clock(j.Arrival()))
	row := color.JourneyTimeStyle.Render(times) + "  " + color.JourneyDurationStyle.Render(FormatDuration(j.Duration()))
	if lipgloss.Width(row) > width {
		return runewidth.Truncate(times, width, "…")
	}
	return row
}

func renderDialogCanvas(m *model.Model, d *model.ScheduleDialog, height int) string {
	box := renderScheduleDialog(m, d)
	var fill func(int) string
	if d.Backdrop {
		fill = backdropFill
	}
	return placeAt(m.Width, height, d.Bounds.X, d.Bounds.Y, box, fill)
}
