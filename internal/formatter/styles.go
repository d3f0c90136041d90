package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/moodmix/internal/models"
)

var styles = NewPalette("#FF5F87", "#04B575", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style]
// fields, one per mood
type Palette struct {
	hype  lipgloss.Style
	chill lipgloss.Style
	mixed lipgloss.Style
}

func NewPalette(hype, chill, mixed string) *Palette {
	return &Palette{
		hype:  NewBold(hype),
		chill: NewBold(chill),
		mixed: NewStyle(mixed),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

// RenderMood returns the mood label styled for terminal output. Unknown
// moods render with the Mixed style.
func RenderMood(mood models.Mood) string {
	switch mood {
	case models.MoodHype:
		return styles.hype.Render(string(mood))
	case models.MoodChill:
		return styles.chill.Render(string(mood))
	default:
		return styles.mixed.Render(string(mood))
	}
}
