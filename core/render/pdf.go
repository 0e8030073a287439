// Package render — PDF brand sheet.
// Lays out the profile as a one-or-two page document using gofpdf:
// identity block, color swatches, typography, vibe, and strategy.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/brandpipe/core"
	"github.com/gaurav-prasanna/brandpipe/core/fuse"
)

// PDFRenderer renders a BrandProfile as a brand sheet PDF.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF bytes.
func (r *PDFRenderer) Render(profile *core.BrandProfile) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Identity block.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.MultiCell(0, 9, profile.CompanyName, "", "L", false)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, profile.WebsiteURL, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if profile.Summary != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, profile.Summary, "", "L", false)
		pdf.Ln(4)
	}

	if len(profile.VibeKeywords) > 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, strings.Join(profile.VibeKeywords, " · "), "", "L", false)
		pdf.Ln(4)
	}

	renderPalette(pdf, profile.Colors)
	renderFonts(pdf, profile.Fonts)
	if profile.Strategy != nil {
		renderStrategy(pdf, profile.Strategy)
	}

	if len(profile.PagesAnalyzed) > 0 {
		sectionHeading(pdf, "Pages Analyzed")
		pdf.SetFont("Helvetica", "", 9)
		for _, page := range profile.PagesAnalyzed {
			pdf.MultiCell(0, 4.5, page, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderPalette draws one labeled swatch row per color role.
func renderPalette(pdf *gofpdf.Fpdf, palette core.ColorPalette) {
	sectionHeading(pdf, "Color Palette")

	swatch(pdf, "Primary", palette.Primary)
	if palette.Secondary != "" {
		swatch(pdf, "Secondary", palette.Secondary)
	}
	if palette.Accent != "" {
		swatch(pdf, "Accent", palette.Accent)
	}
	swatch(pdf, "Background", palette.Background)
	swatch(pdf, "Text", palette.Text)

	if len(palette.AllColors) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.5, "Full palette: "+strings.Join(palette.AllColors, "  "), "", "L", false)
	}
	pdf.Ln(2)
}

// swatch draws a filled color box followed by the role and hex value.
func swatch(pdf *gofpdf.Fpdf, role, hex string) {
	red, green, blue, ok := fuse.HexToRGB(hex)
	if !ok {
		return
	}
	pdf.SetFillColor(red, green, blue)
	pdf.SetDrawColor(200, 200, 200)
	pdf.CellFormat(14, 8, "", "1", 0, "", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("  %s  %s", role, hex), "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func renderFonts(pdf *gofpdf.Fpdf, fonts core.FontSet) {
	sectionHeading(pdf, "Typography")
	pdf.SetFont("Helvetica", "", 10)
	for _, font := range fonts {
		role := ""
		switch {
		case font.IsPrimary:
			role = " (headings)"
		case font.IsBody:
			role = " (body)"
		}
		pdf.MultiCell(0, 5, "• "+font.Family+role, "", "L", false)
	}
	pdf.Ln(2)
}

func renderStrategy(pdf *gofpdf.Fpdf, strategy *core.BrandStrategy) {
	sectionHeading(pdf, "Brand Strategy")
	pdf.SetFont("Helvetica", "", 10)

	kv(pdf, "Archetype", strategy.Archetype)
	kv(pdf, "Voice", strategy.Voice)
	kv(pdf, "Target Audience", strategy.TargetAudience)
	kv(pdf, "Design Style", strategy.DesignStyle)
	list(pdf, "Content Pillars", strategy.ContentPillars)
	list(pdf, "Key Strengths", strategy.KeyStrengths)
	list(pdf, "Campaign Ideas", strategy.CampaignIdeas)
	pdf.Ln(2)
}

func kv(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 5, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, value, "", "L", false)
}

func list(pdf *gofpdf.Fpdf, label string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(0, 5, label, "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, 5, "• "+item, "", "L", false)
	}
}

func sectionHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, text, "", "L", false)
	pdf.Ln(1)
}
