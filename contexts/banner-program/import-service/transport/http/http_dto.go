package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SkipReasonDTO struct {
	Row    int    `json:"row"`
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}

type UnmatchedHeroDTO struct {
	HeroName    string `json:"hero_name"`
	SponsorName string `json:"sponsor_name,omitempty"`
}

type UnmatchedPaymentDTO struct {
	SponsorName   string  `json:"sponsor_name"`
	Amount        float64 `json:"amount,omitempty"`
	AmountKnown   bool    `json:"amount_known"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

type UpsertSummaryDTO struct {
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
}

type ImportReportDTO struct {
	HeroesKept           int                   `json:"heroes_kept"`
	HeroSkips            []SkipReasonDTO       `json:"hero_skips,omitempty"`
	PaymentsKept         int                   `json:"payments_kept"`
	PaymentSkips         []SkipReasonDTO       `json:"payment_skips,omitempty"`
	Matched              int                   `json:"matched"`
	HeroesUnmatched      []UnmatchedHeroDTO    `json:"heroes_unmatched,omitempty"`
	PaymentsUnmatched    []UnmatchedPaymentDTO `json:"payments_unmatched,omitempty"`
	DuplicatePaymentKeys []string              `json:"duplicate_payment_keys,omitempty"`
	Upsert               UpsertSummaryDTO      `json:"upsert"`
}

type ImportResponse struct {
	Status string          `json:"status"`
	Data   ImportReportDTO `json:"data"`
}
