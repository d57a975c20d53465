package audit

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// BuildReportPDF renders a checksum report for distribution outside the
// toolchain.
func BuildReportPDF(report Report, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Integrity Audit Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.UTC().Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Files: %d", len(report.Files)))
	pdf.Ln(5)
	if report.Signature != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Signature: %s", report.Signature))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(110, 6, "Path", "1", 0, "L", false, 0, "")
	pdf.CellFormat(80, 6, "SHA-256", "1", 0, "L", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Courier", "", 7)

	paths := make([]string, 0, len(report.Files))
	for path := range report.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		pdf.CellFormat(110, 6, path, "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 6, report.Files[path], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
