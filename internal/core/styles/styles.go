// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/taskboard/internal/core/task"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	HeaderStyle  lipgloss.Style
	DividerStyle lipgloss.Style
	IDStyle      lipgloss.Style

	// TUI styles.
	TitleStyle         lipgloss.Style
	TextMutedStyle     lipgloss.Style
	TextPrimaryStyle   lipgloss.Style
	RowSelectedStyle   lipgloss.Style
	RowNormalStyle     lipgloss.Style
	RowCompletedStyle  lipgloss.Style
	FilterActiveStyle  lipgloss.Style
	FilterStyle        lipgloss.Style
	InputStyle         lipgloss.Style
	InputFocusedStyle  lipgloss.Style
	ChipStyle          lipgloss.Style
	CounterStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	HelpStyle          lipgloss.Style
	StatusBadgeStyles  map[task.Status]lipgloss.Style
	statusBadgeDefault lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	IDStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground).
		MarginBottom(1)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TextPrimaryStyle = lipgloss.NewStyle().
		Foreground(p.Primary)
	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	RowNormalStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	RowCompletedStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)

	FilterActiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Primary).
		Foreground(p.Background).
		Bold(true)
	FilterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Muted)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Muted).
		PaddingLeft(1)
	InputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Primary).
		PaddingLeft(1)
	ChipStyle = lipgloss.NewStyle().
		Foreground(p.Secondary)

	CounterStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		MarginTop(1)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	badge := lipgloss.NewStyle().Padding(0, 1).Foreground(p.Background)
	StatusBadgeStyles = map[task.Status]lipgloss.Style{
		task.StatusNotStarted: badge.Background(p.Muted),
		task.StatusInProgress: badge.Background(p.Warning),
		task.StatusCompleted:  badge.Background(p.Success),
	}
	statusBadgeDefault = badge.Background(p.Error)
}

// StatusBadge renders the status label as a colored badge.
func StatusBadge(s task.Status) string {
	style, ok := StatusBadgeStyles[s]
	if !ok {
		style = statusBadgeDefault
	}
	return style.Render(s.Label())
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(CurrentPalette.Foreground)
	primary := colorHexPtr(CurrentPalette.Primary)
	secondary := colorHexPtr(CurrentPalette.Secondary)
	muted := colorHexPtr(CurrentPalette.Muted)
	surface := colorHexPtr(CurrentPalette.Surface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = secondary
	cfg.Table.Color = fg

	return cfg
}
