package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(itemCount int, sections []string, width int, searching, refreshing bool, notice string) string {
	left := fmt.Sprintf(" %d publicações · %s", itemCount, strings.ToUpper(strings.Join(sections, " ")))

	right := " / buscar  r atualizar  t notificar  ? ajuda  q sair "
	if searching {
		right = " esc cancelar  enter buscar "
	}
	if refreshing {
		left += " (atualizando...)"
	}
	if notice != "" {
		left += " · " + notice
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
