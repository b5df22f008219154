package curlthis

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
)

// levelWidth pads every level label to the same width so log lines stay
// column aligned.
const levelWidth = 5

// Colours for the log levels curlthis actually logs at.
//
//nolint:gochecknoglobals // Effectively a constant set
var levelColors = map[log.Level]color.Color{
	log.DebugLevel: lipgloss.Color("245"),
	log.InfoLevel:  lipgloss.Color("42"),
	log.WarnLevel:  lipgloss.Color("214"),
	log.ErrorLevel: lipgloss.Color("196"),
}

// logStyles returns the styles for curlthis' diagnostic logger.
//
// Level labels are coloured and fixed width, everything else is kept
// quiet (faint or unstyled) so the message itself stands out. Logs only
// ever go to stderr, stdout is reserved for the generated command.
func logStyles() *log.Styles {
	levels := make(map[log.Level]lipgloss.Style, len(levelColors))
	for level, color := range levelColors {
		levels[level] = lipgloss.NewStyle().
			SetString(strings.ToUpper(level.String())).
			Bold(true).
			MaxWidth(levelWidth).
			Foreground(color)
	}

	return &log.Styles{
		Timestamp: lipgloss.NewStyle().Faint(true),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true),
		Message:   lipgloss.NewStyle(),
		Key:       lipgloss.NewStyle().Faint(true),
		Value:     lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels:    levels,
		Keys:      map[string]lipgloss.Style{},
		Values:    map[string]lipgloss.Style{},
	}
}
