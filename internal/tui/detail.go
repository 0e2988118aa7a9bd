package tui

import (
	"fmt"
	"strings"

	"github.com/LucasPin45/FiscalizaGov/internal/score"
	"github.com/charmbracelet/lipgloss"
)

func renderDetail(item *score.RankedItem, width, height, scroll int) string {
	if item == nil {
		return centerText("Selecione uma publicação", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := item.Title
	if title == "" {
		title = "(sem título)"
	}
	header := detailTitleStyle.Width(contentWidth).Render(title)

	meta := detailMetaStyle.Render(fmt.Sprintf("%s · Seção %s · %s",
		item.Agency, strings.ToUpper(item.Section), item.Date))

	scoreLine := itemScoreStyle.Render(fmt.Sprintf("Relevância: %d/100", item.Score))
	if item.Score >= highScoreThreshold {
		scoreLine = itemScoreHighStyle.Render(fmt.Sprintf("Relevância: %d/100", item.Score))
	}

	var reasons string
	if len(item.Reasons) > 0 {
		reasons = detailReasonStyle.Render("Motivos: " + strings.Join(item.Reasons, ", "))
	}

	summary := item.Summary
	if summary == "" {
		summary = "(Sem ementa disponível)"
	}
	body := detailBodyStyle.Width(contentWidth).Render(wrapText(summary, contentWidth))

	link := ""
	if item.Link != "" {
		link = detailLinkStyle.Width(contentWidth).Render("Abrir: " + item.Link)
	}

	parts := []string{header, meta, scoreLine}
	if reasons != "" {
		parts = append(parts, reasons)
	}
	parts = append(parts, "", body)
	if link != "" {
		parts = append(parts, "", link)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
