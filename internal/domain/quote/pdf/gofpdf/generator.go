package gofpdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"malacara/go_backend/internal/domain/money"
	"malacara/go_backend/internal/domain/quote"
)

const (
	font = "Arial"

	title       = "Quote"
	subtitle    = "Malacara Esquí - Snowboard"
	footerText  = "Generated automatically by Malacara App"
	introText   = "Thank you for contacting Malacara Esquí y Snowboard. Please find your personalised quote below."
	termsText   = "\n- This quote is valid for 15 days.\n- To confirm your booking, please contact us.\n- Cancellations less than 48h in advance carry a charge.\n\nPhone: +34 697 96 44 40 | Email: info@malacaraesqui.com\nWe look forward to seeing you on the slopes of Astún and Candanchú!"
	dateLayout  = "02/01/2006"
	maxItemDesc = 35
)

type rgb struct{ r, g, b int }

var (
	colorTitle     = rgb{220, 50, 50}
	colorSubtitle  = rgb{50, 50, 100}
	colorSection   = rgb{230, 240, 255}
	colorSummary   = rgb{245, 245, 245}
	colorTableHead = rgb{0, 51, 102}
	colorDiscount  = rgb{200, 0, 0}
	colorFooter    = rgb{128, 128, 128}
	colorText      = rgb{0, 0, 0}
)

type Generator struct {
	compress bool
}

// New returns a generator producing compressed PDF streams.
func New() *Generator { return &Generator{compress: true} }

// NewUncompressed keeps page content streams readable, which is useful when
// inspecting output.
func NewUncompressed() *Generator { return &Generator{compress: false} }

func (g *Generator) Generate(doc quote.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.compress)
	pdf.SetTitle(title+" "+doc.Client.Name, true)
	pdf.SetCreator("Malacara App", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(font, "B", 24)
		setText(pdf, colorTitle)
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
		setText(pdf, colorSubtitle)
		pdf.CellFormat(0, 10, tr(subtitle), "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(font, "I", 8)
		setText(pdf, colorFooter)
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(font, "", 10)
	setText(pdf, colorText)
	pdf.MultiCell(0, 5, tr(introText), "", "L", false)
	pdf.Ln(5)

	writeClient(pdf, tr, doc.Client)
	if doc.Lesson.Selected() {
		writeLesson(pdf, tr, doc)
	}
	if len(doc.Rentals) > 0 {
		writeRentals(pdf, tr, doc)
	}
	writeSummary(pdf, tr, doc)
	writeTerms(pdf, tr)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render quote: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write quote: %w", err)
	}
	return buf.Bytes(), nil
}

type translator func(string) string

func writeClient(pdf *gofpdf.Fpdf, tr translator, c quote.Client) {
	sectionTitle(pdf, tr, "Client Details", colorSection)
	pdf.Ln(2)

	requestDate := ""
	if !c.RequestDate.IsZero() {
		requestDate = c.RequestDate.Format(dateLayout)
	}
	field := func(label, value string, ln int) {
		pdf.SetFont(font, "B", 10)
		pdf.CellFormat(40, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont(font, "", 10)
		pdf.CellFormat(50, 6, tr(value), "", ln, "L", false, 0, "")
	}
	field("Name:", c.Name, 0)
	field("Request date:", requestDate, 1)
	field("Travel dates:", c.TravelDates, 0)
	field("Phone:", c.Phone, 1)
	if c.Email != "" {
		field("Email:", c.Email, 1)
	}
	pdf.Ln(5)
}

func writeLesson(pdf *gofpdf.Fpdf, tr translator, doc quote.Document) {
	sectionTitle(pdf, tr, "Lessons", colorSection)
	tableHeader(pdf, tr, []float64{70, 30, 30, 30}, []string{"Service", "Detail", "Unit Price", "Total"})

	l := doc.Lesson
	pdf.SetFont(font, "", 9)
	pdf.CellFormat(70, 8, tr(l.Description), "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, tr(l.Detail), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, money.FormatEUR(l.UnitPrice), "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, money.FormatEUR(l.Total), "1", 1, "C", false, 0, "")
	pdf.Ln(5)
}

func writeRentals(pdf *gofpdf.Fpdf, tr translator, doc quote.Document) {
	sectionTitle(pdf, tr, "Equipment Rental", colorSection)
	tableHeader(pdf, tr, []float64{60, 25, 25, 25, 25}, []string{"Equipment / Grade", "Duration", "Unit Price", "Quantity", "Subtotal"})

	pdf.SetFont(font, "", 8)
	for _, it := range doc.Rentals {
		pdf.CellFormat(60, 8, tr(truncate(it.Description(), maxItemDesc)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d days", it.Days), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, money.FormatEUR(it.UnitPrice), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, strconv.Itoa(it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 8, money.FormatEUR(it.Subtotal), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)
}

func writeSummary(pdf *gofpdf.Fpdf, tr translator, doc quote.Document) {
	s := doc.Summary
	pdf.SetFont(font, "B", 12)
	setFill(pdf, colorSummary)
	pdf.CellFormat(0, 10, tr("Quote Summary"), "", 1, "L", true, 0, "")

	line := func(h float64, label, value string) {
		pdf.CellFormat(140, h, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, h, value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont(font, "", 10)
	line(7, "Lesson total:", money.FormatEUR(s.LessonTotal))
	line(7, "Rental total:", money.FormatEUR(s.RentalTotal))
	if s.DiscountAmount.IsPositive() {
		setText(pdf, colorDiscount)
		line(7, fmt.Sprintf("Discount (%s):", doc.Discount.Reason), "-"+money.FormatEUR(s.DiscountAmount))
		setText(pdf, colorText)
	}
	pdf.SetFont(font, "B", 14)
	line(10, "QUOTE TOTAL:", money.FormatEUR(s.FinalTotal))
	pdf.Ln(5)
}

func writeTerms(pdf *gofpdf.Fpdf, tr translator) {
	sectionTitle(pdf, tr, "Terms & Contact", colorSection)
	pdf.SetFont(font, "", 9)
	pdf.MultiCell(0, 5, tr(termsText), "", "L", false)
}

func sectionTitle(pdf *gofpdf.Fpdf, tr translator, text string, fill rgb) {
	pdf.SetFont(font, "B", 12)
	setText(pdf, colorText)
	setFill(pdf, fill)
	pdf.CellFormat(0, 8, tr(text), "", 1, "L", true, 0, "")
}

func tableHeader(pdf *gofpdf.Fpdf, tr translator, widths []float64, cols []string) {
	pdf.SetFont(font, "B", 9)
	setText(pdf, colorTableHead)
	for i, c := range cols {
		ln := 0
		if i == len(cols)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 8, tr(c), "1", ln, "C", false, 0, "")
	}
	setText(pdf, colorText)
}

func setText(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }

func setFill(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }

// truncate cuts s to max characters.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
