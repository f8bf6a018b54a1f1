// Package export convierte tablas de registros a XLSX / CSV / texto para páginas.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"dairy-records/internal/platform/money"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat: vacío => xlsx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindMoney
	KindDate
)

type Column struct {
	Title string
	Kind  Kind
}

// Table es la vista exportable de una lista: mismas columnas para XLSX, CSV y páginas.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

func (t Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Title
	}
	return out
}

// Filename arma "<name>-<YYYYMMDD>.<ext>".
func Filename(name string, f Format, at time.Time) string {
	return fmt.Sprintf("%s-%s.%s", name, at.Format("20060102"), f)
}

func Write(w io.Writer, t Table, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatXLSX:
		return WriteXLSX(w, t)
	default:
		return ErrUnknownFormat
	}
}

func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers()); err != nil {
		return err
	}
	for _, row := range t.Rows {
		rec := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			if i < len(row) {
				rec[i] = CellString(row[i], c.Kind)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const (
	maxSheetName = 31
	// "#,##0.00" (formato built-in de Excel)
	numFmtMoney = 4
)

func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(t.Name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx: rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return fmt.Errorf("xlsx: money style: %w", err)
	}

	for i, c := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, c.Title); err != nil {
			return err
		}
	}
	if len(t.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return err
		}
	}

	for r, row := range t.Rows {
		for i, c := range t.Columns {
			if i >= len(row) {
				break
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue(sheet, cell, xlsxValue(row[i], c.Kind)); err != nil {
				return err
			}
			if c.Kind == KindMoney {
				if err := f.SetCellStyle(sheet, cell, cell, moneyStyle); err != nil {
					return err
				}
			}
		}
	}

	return f.Write(w)
}

func sheetName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Sheet1"
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}

func xlsxValue(v any, kind Kind) any {
	switch x := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return x.InexactFloat64()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.InexactFloat64()
	case decimal.NullDecimal:
		if !x.Valid {
			return ""
		}
		return x.Decimal.InexactFloat64()
	case time.Time, *time.Time:
		return CellString(v, kind)
	default:
		return v
	}
}

// CellString es la representación plana (CSV): montos sin símbolo, fechas YYYY-MM-DD.
func CellString(v any, kind Kind) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		if kind == KindMoney {
			return x.StringFixed(2)
		}
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return CellString(*x, kind)
	case decimal.NullDecimal:
		if !x.Valid {
			return ""
		}
		return CellString(x.Decimal, kind)
	case *float64:
		if x == nil {
			return ""
		}
		return strconv.FormatFloat(*x, 'f', -1, 64)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "yes"
		}
		return "no"
	case time.Time:
		if x.IsZero() {
			return ""
		}
		if kind == KindDate {
			return x.Format("2006-01-02")
		}
		return x.Format(time.RFC3339)
	case *time.Time:
		if x == nil {
			return ""
		}
		return CellString(*x, kind)
	default:
		return fmt.Sprint(x)
	}
}

// Display es como CellString pero con formato de moneda (páginas HTML).
func Display(v any, kind Kind, symbol string) string {
	if kind == KindMoney {
		switch x := v.(type) {
		case decimal.Decimal:
			return money.Format(x, symbol)
		case *decimal.Decimal:
			if x != nil {
				return money.Format(*x, symbol)
			}
		case decimal.NullDecimal:
			if x.Valid {
				return money.Format(x.Decimal, symbol)
			}
		}
	}
	return CellString(v, kind)
}
