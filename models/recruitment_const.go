package models

type OfferStatus string

const (
	OfferDraft     OfferStatus = "DRAFT"
	OfferSubmitted OfferStatus = "SUBMITTED"
	OfferApproved  OfferStatus = "APPROVED"
	OfferRejected  OfferStatus = "REJECTED"
	OfferAccepted  OfferStatus = "ACCEPTED"
	OfferDeclined  OfferStatus = "DECLINED"
)

func (s OfferStatus) AllowSubmit() bool {
	return s == OfferDraft || s == OfferRejected
}
