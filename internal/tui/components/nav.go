package components

import (
	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
)

// NavItem is one sidebar entry
type NavItem struct {
	Icon    string
	Label   string
	LabelBn string
	Page    state.Page
	Ready   bool // False for sections that are not built yet
}

// navItems lists the sidebar in display order
var navItems = []NavItem{
	{Icon: "▦", Label: "Dashboard", LabelBn: "ড্যাশবোর্ড", Page: state.DashboardPage, Ready: true},
	{Icon: "☺", Label: "Students", LabelBn: "শিক্ষার্থীরা", Page: state.StudentsPage, Ready: true},
	{Icon: "▤", Label: "Applications", LabelBn: "আবেদনসমূহ", Page: state.ApplicationsPage, Ready: true},
	{Icon: "⌂", Label: "Universities", LabelBn: "বিশ্ববিদ্যালয়", Page: state.UniversitiesPage, Ready: true},
	{Icon: "★", Label: "Scholarships", LabelBn: "বৃত্তি"},
	{Icon: "✓", Label: "Counselors", LabelBn: "পরামর্শদাতা"},
	{Icon: "✎", Label: "Content", LabelBn: "কন্টেন্ট"},
	{Icon: "$", Label: "Payments", LabelBn: "পেমেন্ট"},
	{Icon: "▲", Label: "Analytics", LabelBn: "অ্যানালিটিক্স"},
	{Icon: "⚙", Label: "Settings", LabelBn: "সেটিংস"},
}

// NavItems returns the sidebar entries
func NavItems() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}

// Text returns the entry label in lang
func (n NavItem) Text(lang string) string {
	if lang == models.LanguageBangla {
		return n.LabelBn
	}
	return n.Label
}

// PageTitle returns the label of an implemented page in lang
func PageTitle(page state.Page, lang string) string {
	for _, n := range navItems {
		if n.Ready && n.Page == page {
			return n.Text(lang)
		}
	}
	return ""
}

// Section headings
const (
	HeadingActivities    = "activities"
	HeadingNotifications = "notifications"
)

var headings = map[string][2]string{
	HeadingActivities:    {"Recent Activities", "সাম্প্রতিক কার্যক্রম"},
	HeadingNotifications: {"Notifications", "বিজ্ঞপ্তি"},
}

// Heading returns a section heading in lang
func Heading(key, lang string) string {
	h, ok := headings[key]
	if !ok {
		return key
	}
	if lang == models.LanguageBangla {
		return h[1]
	}
	return h[0]
}
