package tui

import (
	"fmt"
	"strings"

	"github.com/LucasPin45/FiscalizaGov/internal/score"
)

const highScoreThreshold = 50

func renderListItem(it score.RankedItem, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	scoreStyle := itemScoreStyle
	if it.Score >= highScoreThreshold {
		scoreStyle = itemScoreHighStyle
	}
	badge := scoreStyle.Render(fmt.Sprintf("%3d", it.Score))

	title := it.Title
	if title == "" {
		title = "(sem título)"
	}

	var line string
	if selected {
		line = badge + " " + itemSelectedStyle.Render("> "+truncateStr(title, width-8))
	} else {
		line = badge + " " + itemTitleStyle.Render("  "+truncateStr(title, width-8))
	}

	meta := "      " + itemAgencyStyle.Render(truncateStr(it.Agency, width-12)) +
		" " + helpDimStyle.Render("· "+strings.ToUpper(it.Section))

	return line + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(items []score.RankedItem, cursor int, height int, width int) string {
	if len(items) == 0 {
		return centerText("Nenhuma publicação encontrada", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(items[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func centerText(s string, width, height int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
