// Package export renders a normalized extraction into an XLSX contact
// sheet for the production office.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/parrot-sketch/Callsheet-extractor/internal/entity"
)

// Service produces XLSX bytes from a NormalizationResult.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportContactSheetXLSX returns an XLSX workbook with one sheet each for
// contacts, emergency contacts, and locations.
func (s *Service) ExportContactSheetXLSX(result entity.NormalizationResult) ([]byte, error) {
	start := time.Now()
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("export.close_failed", "error", cerr)
		}
	}()

	if err := writeContactsSheet(f, result.Result.Contacts); err != nil {
		return nil, err
	}
	if err := writeEmergencySheet(f, result.Result.EmergencyContacts); err != nil {
		return nil, err
	}
	if err := writeLocationsSheet(f, result.Result.Locations); err != nil {
		return nil, err
	}

	// Drop the default sheet excelize creates.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("delete default sheet: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.contact_sheet.ok",
		"contacts", len(result.Result.Contacts),
		"emergency_contacts", len(result.Result.EmergencyContacts),
		"locations", len(result.Result.Locations),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeContactsSheet(f *excelize.File, contacts []entity.Contact) error {
	const sheet = "Contacts"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeHeader(f, sheet, []string{"Name", "Role", "Department", "Phone", "Email", "Notes"})

	for i, c := range contacts {
		row := i + 2
		writeCell(f, sheet, 1, row, c.Name)
		writeCell(f, sheet, 2, row, deref(c.Role))
		writeCell(f, sheet, 3, row, deref(c.Department))
		writeCell(f, sheet, 4, row, deref(c.Phone))
		writeCell(f, sheet, 5, row, deref(c.Email))
		writeCell(f, sheet, 6, row, deref(c.Notes))
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "C", 22)
	_ = f.SetColWidth(sheet, "D", "E", 20)
	_ = f.SetColWidth(sheet, "F", "F", 40)
	return nil
}

func writeEmergencySheet(f *excelize.File, contacts []entity.EmergencyContact) error {
	const sheet = "Emergency"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeHeader(f, sheet, []string{"Type", "Name", "Phone"})

	for i, c := range contacts {
		row := i + 2
		writeCell(f, sheet, 1, row, c.Type)
		writeCell(f, sheet, 2, row, deref(c.Name))
		writeCell(f, sheet, 3, row, deref(c.Phone))
	}

	_ = f.SetColWidth(sheet, "A", "B", 24)
	_ = f.SetColWidth(sheet, "C", "C", 20)
	return nil
}

func writeLocationsSheet(f *excelize.File, locations []entity.Location) error {
	const sheet = "Locations"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeHeader(f, sheet, []string{"Name", "Address", "Phone"})

	for i, l := range locations {
		row := i + 2
		writeCell(f, sheet, 1, row, deref(l.Name))
		writeCell(f, sheet, 2, row, deref(l.Address))
		writeCell(f, sheet, 3, row, deref(l.Phone))
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 20)
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		writeCell(f, sheet, i+1, 1, h)
	}
}

func writeCell(f *excelize.File, sheet string, col, row int, v any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
