package entities

import "time"

// Status is the derived workflow stage of a banner. It is never stored;
// DeriveStatus recomputes it from the flags on every read.
type Status string

const (
	StatusComplete                   Status = "Complete"
	StatusSubmittedToPrinter         Status = "Submitted to Printer"
	StatusApprovedForPrinting        Status = "Approved for Printing"
	StatusProofApprovedByCustomer    Status = "Proof Approved by Customer"
	StatusAwaitingCustomerApproval   Status = "Awaiting Customer Approval"
	StatusReadyToSendProof           Status = "Ready to Send Proof"
	StatusDocsVerifiedPhotoPending   Status = "Documents Verified - Photo Pending"
	StatusPhotoVerifiedDocsPending   Status = "Photo Verified - Documents Pending"
	StatusPaidAwaitingVerification   Status = "Paid - Awaiting Verification"
	StatusPaidInfoIncomplete         Status = "Paid - Info Incomplete"
	StatusInfoCompletePaymentPending Status = "Info Complete - Payment Pending"
	StatusIncomplete                 Status = "Incomplete"
)

// BannerRecord is the persistent record for one hero banner, keyed by the
// normalized (hero name, sponsor name) pair.
//
// Hero-sourced fields and the payment block are refreshed on every import.
// The workflow flags plus PoleLocation and Notes are sticky: imports never
// touch them, only explicit updates do.
type BannerRecord struct {
	BannerID string

	HeroName       string
	SponsorName    string
	SponsorEmail   string
	SponsorPhone   string
	Branch         string
	Rank           string
	ServiceDetail  string
	PhotoReference string

	PaymentVerified    bool
	PaymentAmount      float64
	PaymentAmountKnown bool
	PaymentDate        string
	TransactionID      string

	PoleLocation       string
	Notes              string
	DocumentsVerified  bool
	PhotoVerified      bool
	ProofSent          bool
	ProofApproved      bool
	PrintApproved      bool
	SubmittedToPrinter bool
	ThankYouSent       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InfoComplete reports whether every field needed to produce a banner is
// present. The parser already blanks photo references that fail the CMS
// predicate, so presence implies validity here.
func (b BannerRecord) InfoComplete() bool {
	return b.HeroName != "" &&
		b.Branch != "" &&
		b.SponsorName != "" &&
		b.SponsorEmail != "" &&
		b.PhotoReference != ""
}

// Status derives the workflow stage as an ordered waterfall: the first
// matching rule wins. The function is total — any flag combination,
// including ones reached by manual override, resolves to exactly one label.
func (b BannerRecord) Status() Status {
	infoComplete := b.InfoComplete()
	switch {
	case b.ThankYouSent:
		return StatusComplete
	case b.SubmittedToPrinter:
		return StatusSubmittedToPrinter
	case b.PrintApproved:
		return StatusApprovedForPrinting
	case b.ProofApproved:
		return StatusProofApprovedByCustomer
	case b.ProofSent:
		return StatusAwaitingCustomerApproval
	case b.DocumentsVerified && b.PhotoVerified:
		return StatusReadyToSendProof
	case b.DocumentsVerified:
		return StatusDocsVerifiedPhotoPending
	case b.PhotoVerified:
		return StatusPhotoVerifiedDocsPending
	case infoComplete && b.PaymentVerified:
		return StatusPaidAwaitingVerification
	case b.PaymentVerified:
		return StatusPaidInfoIncomplete
	case infoComplete:
		return StatusInfoCompletePaymentPending
	default:
		return StatusIncomplete
	}
}
