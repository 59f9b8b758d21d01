package entities

// PublicationState is the CMS row state. Only published rows become heroes.
type PublicationState string

const (
	PublicationPublished PublicationState = "PUBLISHED"
	PublicationDraft     PublicationState = "DRAFT"
)

// HeroRecord is one published hero row from the CMS export. Ephemeral:
// rebuilt from the file on every import run.
type HeroRecord struct {
	HeroName       string
	SponsorName    string
	SponsorEmail   string
	SponsorPhone   string
	Branch         string
	Rank           string
	ServiceDetail  string
	PhotoReference string
}

// PaymentRecord is one payment row from the payment export. Ephemeral.
type PaymentRecord struct {
	SponsorName   string
	Confirmed     bool
	Amount        float64
	AmountKnown   bool
	PaymentDate   string
	TransactionID string
}

type SkipCode string

const (
	SkipDraft         SkipCode = "draft"
	SkipMissingName   SkipCode = "missing_name"
	SkipMissingColumn SkipCode = "missing_column"
)

// SkipReason records why a row (or a whole column) was dropped during
// parsing. Accumulated and returned to the caller, never fatal.
type SkipReason struct {
	Row    int // 1-based data row index, 0 for file-level reasons
	Code   SkipCode
	Detail string
}
