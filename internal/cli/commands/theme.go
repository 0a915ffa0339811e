package commands

import (
	"sync"

	"github.com/fatih/color"

	climodel "DarkScope/internal/cli/model"
)

// Palette — цвета вывода под текущую тему. Для тёмной темы статусы
// рисуются жирным, для светлой — обычным начертанием.
type Palette struct {
	Safe   *color.Color
	Medium *color.Color
	High   *color.Color
	Accent *color.Color
	Dim    *color.Color
}

func darkPalette() Palette {
	return Palette{
		Safe:   color.New(color.FgGreen, color.Bold),
		Medium: color.New(color.FgYellow, color.Bold),
		High:   color.New(color.FgRed, color.Bold),
		Accent: color.New(color.FgCyan),
		Dim:    color.New(color.Faint),
	}
}

func lightPalette() Palette {
	return Palette{
		Safe:   color.New(color.FgGreen),
		Medium: color.New(color.FgYellow),
		High:   color.New(color.FgRed),
		Accent: color.New(color.FgBlue),
		Dim:    color.New(color.Faint),
	}
}

// termTheme — применяет тему к выводу терминала; реализует service.ThemeApplier.
type termTheme struct {
	mu      sync.Mutex
	palette Palette
}

var theme = &termTheme{palette: darkPalette()}

// ApplyTheme переключает палитру вывода.
func (t *termTheme) ApplyTheme(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if name == climodel.ThemeLight {
		t.palette = lightPalette()
		return
	}
	t.palette = darkPalette()
}

func (t *termTheme) current() Palette {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.palette
}

// statusColor возвращает цвет для status ("safe"|"medium"|"high").
func statusColor(status string) *color.Color {
	p := theme.current()
	switch status {
	case "high":
		return p.High
	case "medium":
		return p.Medium
	default:
		return p.Safe
	}
}

func accent() *color.Color { return theme.current().Accent }
func dim() *color.Color    { return theme.current().Dim }
