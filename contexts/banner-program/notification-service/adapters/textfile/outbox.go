// Package textfile appends rendered notifications to a plain text log,
// the program's original delivery channel before email was wired in.
package textfile

import (
	"context"
	"fmt"
	"os"

	domainerrors "herobanner/contexts/banner-program/notification-service/domain/errors"
	"herobanner/contexts/banner-program/notification-service/ports"
)

type Outbox struct {
	Path string
}

func NewOutbox(path string) Outbox {
	if path == "" {
		path = "notifications.txt"
	}
	return Outbox{Path: path}
}

func (o Outbox) Append(_ context.Context, message ports.Message) error {
	file, err := os.OpenFile(o.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrOutboxWrite, err)
	}
	defer file.Close()

	entry := fmt.Sprintf(`========================================
%s
========================================
To: %s
Subject: %s

%s
`, message.Kind, message.Recipient, message.Subject, message.Body)
	if _, err := file.WriteString(entry + "\n"); err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrOutboxWrite, err)
	}
	return nil
}
