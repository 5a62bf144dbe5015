package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"shootsuite/internal/domain"
)

// renderInvoicePDF lays out a single-page A4 invoice. The QR code links to
// the job's portal page so the client can pay and collect deliverables.
func renderInvoicePDF(inv *domain.Invoice, job *domain.Job, portalBaseURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "INVOICE")
	pdf.Ln(18)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 50, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, inv.InvoiceNumber)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", inv.Status))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", inv.TotalAmount))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Paid: %.2f", inv.PaidAmount))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Balance due: %.2f", inv.Balance))

	if job != nil {
		portalURL := fmt.Sprintf("%s/%s", portalBaseURL, job.ID)
		qrBytes, err := qrcode.Encode(portalURL, qrcode.Medium, 256)
		if err == nil {
			pdf.RegisterImageOptionsReader("portal-qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
			pdf.ImageOptions("portal-qr", 148, yStart+3, 42, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")
		}
	}

	pdf.SetY(yStart + 58)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Scan the QR code to open your client portal.")
	pdf.Ln(10)

	if job != nil {
		drawSection(pdf, "SESSION")
		pdf.SetFont("Helvetica", "", 12)
		if job.Title != "" {
			pdf.Cell(0, 8, fmt.Sprintf("Session: %s", job.Title))
			pdf.Ln(6)
		}
		pdf.Cell(0, 8, fmt.Sprintf("Date: %s", job.Date))
		pdf.Ln(6)
		if job.Location != "" {
			pdf.Cell(0, 8, fmt.Sprintf("Location: %s", job.Location))
			pdf.Ln(6)
		}
		if job.Client != nil {
			pdf.Cell(0, 8, fmt.Sprintf("Billed to: %s", job.Client.Name))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	drawSection(pdf, "PAYMENT TERMS")
	pdf.SetFont("Helvetica", "", 12)
	if inv.DueDate != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Due date: %s", inv.DueDate.Format("2006-01-02")))
		pdf.Ln(6)
	}
	if inv.Notes != "" {
		pdf.MultiCell(0, 8, inv.Notes, "", "", false)
		pdf.Ln(4)
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02")), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawSection(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
}
