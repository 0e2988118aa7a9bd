package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/score"
)

const appTitle = "FiscalizaGov — Radar do Executivo"

// brasiliaNow formats the current time in Brasília local time. Fixed
// UTC-3 offset: the hosts this runs on do not always ship tzdata, and
// the bulletins do not need DST precision.
func brasiliaNow() string {
	return time.Now().UTC().Add(-3 * time.Hour).Format("02/01/2006 15:04")
}

// TopMessage renders the digest the scheduled notifier sends: the
// highest-ranked items with their agency, section, score and reason
// trail.
func TopMessage(items []score.RankedItem, limit int) string {
	if limit > len(items) {
		limit = len(items)
	}

	var lines []string
	for _, it := range items[:limit] {
		line := fmt.Sprintf("• <b>%s</b>\n  🏛️ %s | %s | ⭐ %d",
			html.EscapeString(it.Title), html.EscapeString(it.Agency), it.Section, it.Score)
		if len(it.Reasons) > 0 {
			line += " (" + html.EscapeString(strings.Join(it.Reasons, ", ")) + ")"
		}
		if it.Link != "" {
			line += "\n  " + it.Link
		}
		lines = append(lines, line)
	}

	return fmt.Sprintf("🔎 <b>%s</b>\n🕒 %s\n\n🏷️ <b>TOP %d Achados (DOU)</b>\n\n%s",
		appTitle, brasiliaNow(), limit, strings.Join(lines, "\n\n"))
}

// EmptyMessage is sent when a scheduled run finds nothing, so silence
// never means "broken".
func EmptyMessage() string {
	return fmt.Sprintf("🔔 <b>%s</b>\n🕒 %s\n\n📜 DOU — Sem achados para os filtros de hoje.",
		appTitle, brasiliaNow())
}

// ItemMessage renders a single item, used by the interactive send
// action.
func ItemMessage(it score.RankedItem) string {
	reasons := strings.Join(it.Reasons, ", ")
	msg := fmt.Sprintf("🔎 <b>%s</b>\n🕒 %s\n\n📜 <b>DOU</b> — %s\n🏛️ <b>Órgão:</b> %s\n⭐ <b>Score:</b> %d (%s)\n\n<b>%s</b>",
		appTitle, brasiliaNow(), it.Section,
		html.EscapeString(it.Agency), it.Score, html.EscapeString(reasons),
		html.EscapeString(it.Title))
	if it.Summary != "" {
		msg += "\n\n" + html.EscapeString(it.Summary)
	}
	if it.Link != "" {
		msg += "\n\n" + it.Link
	}
	return msg
}

// TestMessage is the connection check sent by `notify --test`.
func TestMessage() string {
	return fmt.Sprintf("🔎 <b>%s</b>\n\n✅ Conexão configurada com sucesso.\n🕒 %s\n\nVocê receberá notificações dos achados do Executivo.",
		appTitle, brasiliaNow())
}
