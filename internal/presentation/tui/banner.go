package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Pipework.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient (teal to violet)
	lines := []struct {
		text  string
		color string
	}{
		{`        _                                _    `, "#2dd4bf"},
		{`  _ __ (_)_ __   _____      _____  _ __| | __`, "#22d3ee"},
		{` | '_ \| | '_ \ / _ \ \ /\ / / _ \| '__| |/ /`, "#38bdf8"},
		{` | |_) | | |_) |  __/\ V  V / (_) | |  |   < `, "#818cf8"},
		{` | .__/|_| .__/ \___| \_/\_/ \___/|_|  |_|\_\`, "#a78bfa"},
		{` |_|     |_|                                 `, "#c084fc"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println(termenv.String(fmt.Sprintf("   v%s", version)).Foreground(p.Color("#6b7280")))
	fmt.Println()
}
