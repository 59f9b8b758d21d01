package ports

import (
	"context"
	"time"
)

// Banner is the notification-facing view of a registry record.
type Banner struct {
	BannerID        string
	HeroName        string
	SponsorName     string
	SponsorEmail    string
	PoleLocation    string
	Status          string
	InfoComplete    bool
	PaymentVerified bool
	ProofSent       bool
	ProofApproved   bool
	MissingFields   []string
}

// Registry is the only write surface this service has into banner state:
// it may flip proof_sent and proof_approved and nothing else.
type Registry interface {
	ListBanners(ctx context.Context) ([]Banner, error)
	MarkProofSent(ctx context.Context, bannerID string) error
	MarkProofApproved(ctx context.Context, bannerID string) error
}

// StatusReadyToSendProof mirrors the registry's label for the stage that
// triggers proof notifications.
const StatusReadyToSendProof = "Ready to Send Proof"

type MessageKind string

const (
	KindProofReady     MessageKind = "proof_ready"
	KindIncompleteInfo MessageKind = "incomplete_info"
	KindPaymentPending MessageKind = "payment_pending"
	KindPrintApproved  MessageKind = "print_approved"
)

// Message is one rendered outbound notification.
type Message struct {
	MessageID string
	Kind      MessageKind
	BannerID  string
	Recipient string
	Subject   string
	Body      string
	CreatedAt time.Time
}

// OutboxWriter persists rendered messages; the text-file adapter matches
// the program's original notifications log.
type OutboxWriter interface {
	Append(ctx context.Context, message Message) error
}

// Mailer delivers a message. Optional: without one, writing the outbox
// counts as sending.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// InboxMessage is one received reply handed in by the caller.
type InboxMessage struct {
	Sender   string
	Subject  string
	Received time.Time
}

// ApprovalResult records one banner updated by an approval reply.
type ApprovalResult struct {
	BannerID     string
	HeroName     string
	SponsorEmail string
}

type SendStats struct {
	Sent    int
	Failed  int
	Skipped int
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
