package service

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/MohauNtholeng/PowerBI-Visual/internal/surface"
)

const pdfFont = "Helvetica"

// renderPDF draws the display list as vector shapes on a single page the size of the surface.
func renderPDF(w io.Writer, sf *surface.Surface, title string) error {
	width, height := sf.Size()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetTitle(title, true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	surface.Walk(sf.Elements(), func(e surface.Element, dx, dy float64) {
		switch el := e.(type) {
		case surface.Rect:
			setFill(pdf, el.Fill)
			style := "F"
			if el.StrokeWidth > 0 {
				setDraw(pdf, el.Stroke, el.StrokeWidth, nil)
				style = "FD"
			}
			pdf.Rect(el.X+dx, el.Y+dy, el.Width, el.Height, style)

		case surface.Line:
			setDraw(pdf, el.Stroke, el.StrokeWidth, el.Dash)
			pdf.Line(el.X1+dx, el.Y1+dy, el.X2+dx, el.Y2+dy)

		case surface.Circle:
			if el.FillOpacity > 0 && el.FillOpacity < 1 {
				pdf.SetAlpha(el.FillOpacity, "Normal")
			}
			setFill(pdf, el.Fill)
			style := "F"
			if el.StrokeWidth > 0 {
				setDraw(pdf, el.Stroke, el.StrokeWidth, nil)
				style = "FD"
			}
			pdf.Circle(el.CX+dx, el.CY+dy, el.Radius, style)
			pdf.SetAlpha(1, "Normal")

		case surface.Text:
			if el.Body == "" {
				return
			}
			fontStyle := ""
			if el.Bold {
				fontStyle = "B"
			}
			pdf.SetFont(pdfFont, fontStyle, el.FontSize)
			pdf.SetTextColor(int(el.Color.R), int(el.Color.G), int(el.Color.B))
			body := tr(el.Body)
			x := el.X + dx
			switch el.Anchor {
			case surface.AnchorMiddle:
				x -= pdf.GetStringWidth(body) / 2
			case surface.AnchorEnd:
				x -= pdf.GetStringWidth(body)
			}
			pdf.Text(x, el.Y+dy, body)
		}
	})

	return pdf.Output(w)
}

func setFill(pdf *gofpdf.Fpdf, c drawing.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setDraw(pdf *gofpdf.Fpdf, c drawing.Color, width float64, dash []float64) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	pdf.SetLineWidth(width)
	pdf.SetDashPattern(dash, 0)
}
