package navigation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxSuggestions = 3

var (
	unknownTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	unknownHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// Suggest returns up to three known routes closest to name by edit distance.
func Suggest(name string, known []string) []string {
	type scored struct {
		route string
		dist  int
	}
	limit := max(2, len(name)/2)
	candidates := make([]scored, 0, len(known))
	for _, k := range known {
		if k == name {
			continue
		}
		d := levenshtein.ComputeDistance(name, k)
		if d <= limit {
			candidates = append(candidates, scored{route: k, dist: d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	out := make([]string, 0, maxSuggestions)
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.route)
	}
	return out
}

type unknownPage struct {
	route       string
	suggestions []string
}

func defaultUnknownRoute(known []string) RouteFactory {
	return func(settings RouteSettings) (Page, bool) {
		return unknownPage{route: settings.Name, suggestions: Suggest(settings.Name, known)}, true
	}
}

func (p unknownPage) Route() string { return p.route }
func (p unknownPage) Title() string { return "Not found" }

func (p unknownPage) Update(tea.Msg) (Page, tea.Cmd) { return p, nil }

func (p unknownPage) View(width, height int) string {
	lines := []string{unknownTitleStyle.Render(fmt.Sprintf("No route named %q", p.route))}
	if len(p.suggestions) > 0 {
		lines = append(lines, "", unknownHintStyle.Render("Did you mean: "+strings.Join(p.suggestions, ", ")))
	}
	return strings.Join(lines, "\n")
}
