package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tidsreg-be/internal/entities"
)

const (
	CSVContentType = "text/csv; charset=utf-8"
	CSVFilename    = "time_entries.csv"

	utf8BOM = "\ufeff"
)

var csvHeader = []string{"Dato", "Person", "Start", "Slut", "Minutter", "Timer", "Note"}

// WriteEntriesCSV writes the detail export in the spreadsheet-friendly
// Danish layout: BOM, semicolons, comma decimals and an always quoted note.
// Lines are joined by \n with no trailing newline.
func WriteEntriesCSV(w io.Writer, rows []entities.EntryRow) error {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(strings.Join(csvHeader, ";"))

	for _, row := range rows {
		note := ""
		if row.Note != nil {
			note = *row.Note
		}
		fields := []string{
			row.WorkDate,
			row.UserName,
			row.StartTime,
			row.EndTime,
			strconv.Itoa(row.DurationMinutes),
			decimalComma(float64(row.DurationMinutes) / 60),
			`"` + strings.ReplaceAll(note, `"`, `""`) + `"`,
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(fields, ";"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func decimalComma(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
