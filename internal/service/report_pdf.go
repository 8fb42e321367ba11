package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"presensi/backend/internal/repository/postgres/report"
)

// ReportToPDF renders the daily report as a landscape A4 table.
func ReportToPDF(list []report.GetReportResponse) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Laporan Presensi")
	pdf.Ln(12)

	headers := []string{"ID", "Nama", "NIM", "Check In", "Check Out"}
	widths := []float64{15, 60, 35, 80, 80}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, entry := range list {
		nim := ""
		if entry.User != nil {
			nim = strOrEmpty(entry.User.Nim)
		}
		cells := []string{
			fmt.Sprintf("%d", entry.ID),
			entry.Nama,
			nim,
			entry.CheckIn,
			strOrEmpty(entry.CheckOut),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}
