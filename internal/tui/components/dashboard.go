package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/notifications"
	"github.com/thenoetrevino/admitdesk/internal/tui/theme"
)

// KPIWidth is the inner width of a KPI card
const KPIWidth = 24

// RenderKPI renders one KPI card
//
//	Total Students
//	3
//	+12% from last month
func RenderKPI(kpi models.KPI) string {
	value := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", kpi.Value))
	change := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)).Render(kpi.Change)
	body := SubtleStyle.Render(truncate(kpi.Title, KPIWidth)) + "\n" +
		value + "\n" +
		change + SubtleStyle.Render(" from last month")
	return PanelStyle.Width(KPIWidth + 4).Render(body)
}

// RenderKPIs lays the KPI cards out in a row
func RenderKPIs(kpis []models.KPI) string {
	cards := make([]string, 0, len(kpis))
	for _, k := range kpis {
		cards = append(cards, RenderKPI(k))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func activityIcon(kind string) string {
	switch kind {
	case "document":
		return "✎"
	case "visa":
		return "✈"
	case "enrollment":
		return "✓"
	default:
		return "▤"
	}
}

// RenderActivities renders the recent activities panel
func RenderActivities(title string, activities []models.Activity, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n")
	if len(activities) == 0 {
		b.WriteString(SubtleStyle.Render("Nothing yet"))
	}
	for _, a := range activities {
		line := fmt.Sprintf("%s %s %s", activityIcon(a.Kind), a.Student, a.Action)
		b.WriteString(truncate(line, width-4) + "\n")
		b.WriteString(SubtleStyle.Render("  "+a.Time) + "\n")
	}
	return PanelStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// RenderNotifications renders the dashboard notifications panel
func RenderNotifications(title string, items []models.Notification, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n")
	if len(items) == 0 {
		b.WriteString(SubtleStyle.Render("Nothing yet"))
	}
	for _, n := range items {
		b.WriteString(notifications.RenderInline(notifications.FromLevel(n.Level), n.Title) + "\n")
		b.WriteString(SubtleStyle.Render("  "+truncate(n.Message, width-6)) + "\n")
	}
	return PanelStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
