package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type MessageDTO struct {
	MessageID string `json:"message_id"`
	Kind      string `json:"kind"`
	BannerID  string `json:"banner_id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	CreatedAt string `json:"created_at"`
}

type SendProofsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Sent     int          `json:"sent"`
		Failed   int          `json:"failed"`
		Skipped  int          `json:"skipped"`
		Messages []MessageDTO `json:"messages,omitempty"`
	} `json:"data"`
}

type InboxMessageDTO struct {
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
}

type ProcessApprovalsRequest struct {
	Replies []InboxMessageDTO `json:"replies"`
}

type ApprovalResultDTO struct {
	BannerID     string `json:"banner_id"`
	HeroName     string `json:"hero_name"`
	SponsorEmail string `json:"sponsor_email"`
}

type ProcessApprovalsResponse struct {
	Status string              `json:"status"`
	Data   []ApprovalResultDTO `json:"data"`
}
