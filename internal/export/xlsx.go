package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"tidsreg-be/internal/entities"
	"tidsreg-be/internal/models"
	"tidsreg-be/internal/timecalc"
)

const (
	XLSXContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	EntriesXLSXFilename = "time_entries.xlsx"
	SummaryXLSXFilename = "time_summary.xlsx"

	EntriesSheet = "Tid (detaljer)"
	SummarySheet = "Opsummering"

	defaultSheet = "Sheet1"
)

type column struct {
	header string
	width  float64
}

var entryColumns = []column{
	{"Dato", 12},
	{"Person", 22},
	{"Start", 10},
	{"Slut", 10},
	{"Minutter", 10},
	{"Timer", 10},
	{"Note", 50},
}

var summaryColumns = []column{
	{"Person", 24},
	{"Registreringer", 16},
	{"Minutter", 12},
	{"Timer", 10},
}

// EntriesXLSX renders the detail rows as a workbook held in memory.
func EntriesXLSX(rows []entities.EntryRow) ([]byte, error) {
	f, err := newSheet(EntriesSheet, entryColumns)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetRowStyle(EntriesSheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		note := ""
		if row.Note != nil {
			note = *row.Note
		}
		values := []any{
			row.WorkDate,
			row.UserName,
			row.StartTime,
			row.EndTime,
			row.DurationMinutes,
			timecalc.Hours(row.DurationMinutes),
			note,
		}
		if err := setRow(f, EntriesSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	return render(f)
}

// SummaryXLSX renders per-user totals followed by a bold TOTAL row.
func SummaryXLSX(rows []models.SummaryResponse) ([]byte, error) {
	f, err := newSheet(SummarySheet, summaryColumns)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var totalEntries, totalMinutes int
	for i, row := range rows {
		totalEntries += row.Entries
		totalMinutes += row.Minutes
		values := []any{row.UserName, row.Entries, row.Minutes, row.Hours}
		if err := setRow(f, SummarySheet, i+2, values); err != nil {
			return nil, err
		}
	}

	totalRow := len(rows) + 2
	total := []any{"TOTAL", totalEntries, totalMinutes, timecalc.Hours(totalMinutes)}
	if err := setRow(f, SummarySheet, totalRow, total); err != nil {
		return nil, err
	}

	middle := &excelize.Alignment{Vertical: "center"}
	plain, err := f.NewStyle(&excelize.Style{Alignment: middle})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: middle})
	if err != nil {
		return nil, fmt.Errorf("create bold style: %w", err)
	}

	if err := f.SetRowStyle(SummarySheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}
	if len(rows) > 0 {
		if err := f.SetRowStyle(SummarySheet, 2, totalRow-1, plain); err != nil {
			return nil, fmt.Errorf("style rows: %w", err)
		}
	}
	if err := f.SetRowStyle(SummarySheet, totalRow, totalRow, bold); err != nil {
		return nil, fmt.Errorf("style total: %w", err)
	}

	return render(f)
}

// newSheet creates a workbook whose only sheet is named sheet and carries
// the header row and column widths.
func newSheet(sheet string, columns []column) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c.header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set width of column %s: %w", name, err)
		}
	}

	if err := setRow(f, sheet, 1, header); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func render(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
