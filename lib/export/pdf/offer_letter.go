// Package pdfexport renders printable documents.
package pdfexport

import (
	"bytes"
	"fmt"

	dbmodels "hrms-backend/models/db"

	"github.com/go-pdf/fpdf"
)

// OfferLetter renders an approved job offer as a one-page PDF letter.
func OfferLetter(offer dbmodels.JobOffer) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Offer of Employment", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Offer of Employment", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Dear %s,", offer.CandidateName), "", "L", false)
	pdf.Ln(2)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"We are pleased to offer you the position of %s (grade %s) "+
			"with an annual salary of %.2f, starting on %s.",
		offer.JobTitle, offer.Grade, offer.AnnualSalary,
		offer.StartDate.Format("2 January 2006")), "", "L", false)
	pdf.Ln(2)
	if offer.HiringManager != nil {
		pdf.MultiCell(0, 6, fmt.Sprintf(
			"You will report to %s.", offer.HiringManager.GetFullName()), "", "L", false)
		pdf.Ln(2)
	}
	pdf.MultiCell(0, 6,
		"Please confirm your acceptance of this offer in writing. "+
			"This offer remains valid for fourteen days from the date above.", "", "L", false)
	pdf.Ln(10)
	pdf.MultiCell(0, 6, "Yours sincerely,", "", "L", false)
	pdf.Ln(8)
	pdf.MultiCell(0, 6, "Human Resources", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
