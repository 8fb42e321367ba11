package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"presensi/backend/internal/repository/postgres/report"
)

var reportHeaders = []string{"ID", "User ID", "Nama", "NIM", "Program Studi", "Check In", "Check Out", "Bukti Foto"}

// ReportToExcel renders the daily report as an xlsx workbook.
func ReportToExcel(list []report.GetReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	for i, header := range reportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range list {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.UserID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.Nama)
		if entry.User != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), strOrEmpty(entry.User.Nim))
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), strOrEmpty(entry.User.ProgramStudi))
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.CheckIn)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), strOrEmpty(entry.CheckOut))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), strOrEmpty(entry.BuktiFoto))
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
