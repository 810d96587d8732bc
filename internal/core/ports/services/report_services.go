package services

import "context"

// ReportSvcFacade renders the month schedule into downloadable documents.
type ReportSvcFacade interface {
	// BuildMonthPDF renders the duty schedule of (year, month) as a PDF.
	BuildMonthPDF(ctx context.Context, year, month int) ([]byte, error)

	// BuildMonthXLSX renders the duty schedule of (year, month) as an XLSX
	// workbook.
	BuildMonthXLSX(ctx context.Context, year, month int) ([]byte, error)
}
