package http

type ErrorResponse struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Candidates []BannerDTO `json:"candidates,omitempty"`
}

type BannerDTO struct {
	BannerID           string  `json:"banner_id"`
	HeroName           string  `json:"hero_name"`
	SponsorName        string  `json:"sponsor_name"`
	SponsorEmail       string  `json:"sponsor_email,omitempty"`
	SponsorPhone       string  `json:"sponsor_phone,omitempty"`
	Branch             string  `json:"branch,omitempty"`
	Rank               string  `json:"rank,omitempty"`
	ServiceDetail      string  `json:"service_detail,omitempty"`
	PhotoReference     string  `json:"photo_reference,omitempty"`
	InfoComplete       bool    `json:"info_complete"`
	PaymentVerified    bool    `json:"payment_verified"`
	PaymentAmount      float64 `json:"payment_amount,omitempty"`
	PaymentAmountKnown bool    `json:"payment_amount_known"`
	PoleLocation       string  `json:"pole_location,omitempty"`
	Notes              string  `json:"notes,omitempty"`
	DocumentsVerified  bool    `json:"documents_verified"`
	PhotoVerified      bool    `json:"photo_verified"`
	ProofSent          bool    `json:"proof_sent"`
	ProofApproved      bool    `json:"proof_approved"`
	PrintApproved      bool    `json:"print_approved"`
	SubmittedToPrinter bool    `json:"submitted_to_printer"`
	ThankYouSent       bool    `json:"thank_you_sent"`
	Status             string  `json:"status"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type ListBannersResponse struct {
	Status string      `json:"status"`
	Data   []BannerDTO `json:"data"`
}

type GetBannerResponse struct {
	Status string    `json:"status"`
	Data   BannerDTO `json:"data"`
}

type UpdateByNameRequest struct {
	HeroName string `json:"hero_name"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

type UpdateByNameResponse struct {
	Status     string      `json:"status"`
	Data       BannerDTO   `json:"data,omitempty"`
	Candidates []BannerDTO `json:"candidates,omitempty"`
}

type PatchBannerRequest struct {
	Fields map[string]string `json:"fields"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type SummaryResponse struct {
	Status string `json:"status"`
	Data   struct {
		Total    int              `json:"total"`
		ByStatus []StatusCountDTO `json:"by_status"`
	} `json:"data"`
}
