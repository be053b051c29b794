package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

type pdfColumn struct {
	header string
	width  float64
	value  func(TimetableRow) string
}

var pdfColumns = []pdfColumn{
	{"Rank", 12, func(r TimetableRow) string { return strconv.Itoa(r.Rank) }},
	{"Fitness", 16, func(r TimetableRow) string { return strconv.Itoa(r.Fitness) }},
	{"Course", 28, func(r TimetableRow) string { return r.Course }},
	{"Section", 22, func(r TimetableRow) string { return r.SectionID }},
	{"Type", 16, func(r TimetableRow) string { return r.MeetingType }},
	{"Day", 24, func(r TimetableRow) string { return r.Day }},
	{"Time", 30, func(r TimetableRow) string { return r.Time }},
	{"Location", 40, func(r TimetableRow) string { return r.Location }},
	{"Instructor", 50, func(r TimetableRow) string { return r.Instructor }},
	{"Waitlist", 20, func(r TimetableRow) string {
		if r.Waitlisted {
			return "yes"
		}
		return ""
	}},
}

// PDFExporter renders timetables into a landscape tabular PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with an optional title. A thicker rule
// separates consecutive schedules.
func (e *PDFExporter) Render(t Timetable) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if t.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(t.Title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "B", 10)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(t.Rows) == 0 {
		pdf.CellFormat(0, 8, "No schedule found.", "1", 1, "C", false, 0, "")
	}
	lastRank := 0
	for _, row := range t.Rows {
		if lastRank != 0 && row.Rank != lastRank {
			x, y := pdf.GetXY()
			pdf.SetLineWidth(0.6)
			pdf.Line(x, y, x+totalWidth(), y)
			pdf.SetLineWidth(0.2)
		}
		lastRank = row.Rank
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.value(row), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) ContentType() string { return "application/pdf" }
func (e *PDFExporter) Extension() string   { return "pdf" }

func totalWidth() float64 {
	w := 0.0
	for _, col := range pdfColumns {
		w += col.width
	}
	return w
}
