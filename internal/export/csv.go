// Package export serializes ranked results for spreadsheet use.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/LucasPin45/FiscalizaGov/internal/score"
)

// Column layout of the exported sheet, kept identical to what the tool
// has always produced.
var columns = []string{
	"Score", "Motivos", "Fonte", "Data", "Seção",
	"Órgão", "Título", "Ementa/Resumo", "Link",
}

// utf8BOM makes Excel detect the encoding and render accented text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the ranked list as semicolon-separated values with a
// UTF-8 BOM.
func WriteCSV(w io.Writer, items []score.RankedItem) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, it := range items {
		row := []string{
			strconv.Itoa(it.Score),
			strings.Join(it.Reasons, ", "),
			it.Source,
			it.Date,
			it.Section,
			it.Agency,
			it.Title,
			it.Summary,
			it.Link,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FileName is the conventional export name for one reference date.
func FileName(date time.Time) string {
	return "fiscalizagov_dou_" + date.Format("20060102") + ".csv"
}
