package components

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/admitdesk/internal/models"
	"github.com/thenoetrevino/admitdesk/internal/tui/state"
)

func TestNavItems(t *testing.T) {
	items := NavItems()
	if len(items) != 10 {
		t.Fatalf("len(NavItems()) = %d, want 10", len(items))
	}

	ready := 0
	for _, it := range items {
		if it.Ready {
			ready++
		}
	}
	if ready != state.PageCount {
		t.Errorf("ready entries = %d, want %d", ready, state.PageCount)
	}
}

func TestRenderSidebar_Language(t *testing.T) {
	en := RenderSidebar(SidebarProps{Active: state.StudentsPage, Language: models.LanguageEnglish})
	if !strings.Contains(en, "Students") || !strings.Contains(en, "soon") {
		t.Errorf("English sidebar missing labels:\n%s", en)
	}

	bn := RenderSidebar(SidebarProps{Active: state.StudentsPage, Language: models.LanguageBangla})
	if !strings.Contains(bn, "শিক্ষার্থীরা") {
		t.Errorf("Bangla sidebar missing label:\n%s", bn)
	}
}

// TestRenderSidebar_Collapsed ensures the collapsed sidebar shows icons only.
func TestRenderSidebar_Collapsed(t *testing.T) {
	out := RenderSidebar(SidebarProps{Collapsed: true, Language: models.LanguageEnglish})
	if strings.Contains(out, "Dashboard") {
		t.Errorf("collapsed sidebar shows labels:\n%s", out)
	}
}

func TestPageTitle(t *testing.T) {
	if got := PageTitle(state.ApplicationsPage, models.LanguageEnglish); got != "Applications" {
		t.Errorf("PageTitle(Applications, en) = %q", got)
	}
	if got := PageTitle(state.DashboardPage, models.LanguageBangla); got != "ড্যাশবোর্ড" {
		t.Errorf("PageTitle(Dashboard, bn) = %q", got)
	}
}

func TestRenderKPI(t *testing.T) {
	out := RenderKPI(models.KPI{Title: "Total Students", Value: 3, Change: "+12%"})
	for _, want := range []string{"Total Students", "3", "+12%"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderKPI() missing %q:\n%s", want, out)
		}
	}
}
