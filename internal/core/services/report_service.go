package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/hospitaldms/duty_scheduler/internal/apperrors"
	portssvc "github.com/hospitaldms/duty_scheduler/internal/core/ports/services"
	"github.com/hospitaldms/duty_scheduler/internal/platform/config"
)

type reportService struct {
	scheduleSvc portssvc.ScheduleReaderSvc
	cfg         *config.Config
}

// NewReportService creates the report export service.
func NewReportService(scheduleSvc portssvc.ScheduleReaderSvc, cfg *config.Config) portssvc.ReportSvcFacade {
	return &reportService{scheduleSvc: scheduleSvc, cfg: cfg}
}

// monthKeys returns the schedule's date keys in calendar order. Keys share a
// month, so lexicographic order on DD.MM.YYYY is day order.
func monthKeys(schedule map[string][]string) []string {
	keys := make([]string, 0, len(schedule))
	for k := range schedule {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *reportService) monthSchedule(ctx context.Context, year, month int) (map[string][]string, time.Time, error) {
	if month < 1 || month > 12 {
		return nil, time.Time{}, fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, month)
	}
	anchor := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	schedule, err := s.scheduleSvc.GetMonthSchedule(ctx, anchor)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load month schedule for report: %w", err)
	}
	return schedule, anchor, nil
}

// BuildMonthPDF renders the duty schedule of the given month as a printable
// A4 document with the hospital letterhead and contact block.
func (s *reportService) BuildMonthPDF(ctx context.Context, year, month int) ([]byte, error) {
	schedule, anchor, err := s.monthSchedule(ctx, year, month)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Duty Schedule %s %d", anchor.Month().String(), year), false)
	pdf.AddPage()

	if s.cfg.ReportLogoPath != "" {
		if _, statErr := os.Stat(s.cfg.ReportLogoPath); statErr == nil {
			pdf.ImageOptions(s.cfg.ReportLogoPath, 10, 10, 30, 0, false, gofpdf.ImageOptions{}, 0, "")
			pdf.SetY(32)
		}
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, s.cfg.HospitalName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, s.cfg.HospitalAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, s.cfg.HospitalPhone, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Duty Schedule: %s %d", anchor.Month().String(), year), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	for i, key := range monthKeys(schedule) {
		names := schedule[key]
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s", i+1, key), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		if len(names) == 0 {
			pdf.CellFormat(0, 5, "    no one assigned", "", 1, "L", false, 0, "")
			continue
		}
		for j, name := range names {
			pdf.CellFormat(0, 5, fmt.Sprintf("    %d) %s", j+1, name), "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", time.Now().Format("02.01.2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("HR department: %s, %s", s.cfg.HRPhone, s.cfg.HREmail), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render schedule PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildMonthXLSX renders the duty schedule of the given month as a worksheet
// with one row per assignment.
func (s *reportService) BuildMonthXLSX(ctx context.Context, year, month int) ([]byte, error) {
	schedule, anchor, err := s.monthSchedule(ctx, year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := anchor.Month().String()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Date", "Employee"}); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	row := 2
	for _, key := range monthKeys(schedule) {
		for _, name := range schedule[key] {
			cell, cellErr := excelize.CoordinatesToCellName(1, row)
			if cellErr != nil {
				return nil, fmt.Errorf("failed to address report row: %w", cellErr)
			}
			if err := f.SetSheetRow(sheet, cell, &[]any{key, name}); err != nil {
				return nil, fmt.Errorf("failed to write report row: %w", err)
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render schedule workbook: %w", err)
	}
	return buf.Bytes(), nil
}
