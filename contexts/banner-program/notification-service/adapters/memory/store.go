// Package memory provides in-memory notification adapters for tests: an
// outbox that records messages, a mailer that records deliveries, and the
// Clock/IDGenerator ports.
package memory

import (
	"context"
	"sync"
	"time"

	"herobanner/contexts/banner-program/notification-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	outbox   []ports.Message
	mailSent []SentMail
	FailMail bool
}

type SentMail struct {
	To      string
	Subject string
	Body    string
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, message ports.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(s.outbox, message)
	return nil
}

func (s *Store) Send(_ context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailMail {
		return errMailFailed
	}
	s.mailSent = append(s.mailSent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (s *Store) Outbox() []ports.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.Message(nil), s.outbox...)
}

func (s *Store) Mail() []SentMail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SentMail(nil), s.mailSent...)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type mailError string

func (e mailError) Error() string { return string(e) }

const errMailFailed = mailError("mail delivery failed")
