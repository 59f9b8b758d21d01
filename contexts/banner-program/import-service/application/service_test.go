package application

import (
	"context"
	"errors"
	"testing"

	"herobanner/contexts/banner-program/import-service/adapters/memory"
	domainerrors "herobanner/contexts/banner-program/import-service/domain/errors"
	"herobanner/contexts/banner-program/import-service/ports"
)

type fakeUpserter struct {
	received []ports.ImportedBanner
	summary  ports.UpsertSummary
	fail     error
}

func (f *fakeUpserter) UpsertBatch(_ context.Context, banners []ports.ImportedBanner) (ports.UpsertSummary, error) {
	if f.fail != nil {
		return ports.UpsertSummary{}, f.fail
	}
	f.received = banners
	return f.summary, nil
}

type failingSource struct{}

func (failingSource) Rows() ([]string, [][]string, error) {
	return nil, nil, errors.New("disk gone")
}

func TestImportEndToEnd(t *testing.T) {
	registry := &fakeUpserter{summary: ports.UpsertSummary{Created: 2}}
	service := Service{Registry: registry}

	heroSource := memory.NewSource(
		[]string{"Status", "Service Name", "Branch", "Name of Buyer", "Email", "Image"},
		[][]string{
			{"PUBLISHED", "John Smith", "Army", "Jane Smith", "jane@example.com", "wix:image://v1/a"},
			{"PUBLISHED", "Mary Major", "Navy", "Paul Major", "paul@example.com", "wix:image://v1/b"},
			{"DRAFT", "Draft Hero", "Army", "", "", ""},
		},
	)
	paymentSource := memory.NewSource(
		[]string{"Your Name", "Status", "One Banner", "Created date", "Id"},
		[][]string{
			{"Jane Smith", "CONFIRMED", `[["One Banner","$95"]]`, "2024-05-01", "tx-1"},
			{"Stranger", "CONFIRMED", "$95", "2024-05-02", "tx-2"},
		},
	)

	report, err := service.Import(context.Background(), heroSource, paymentSource)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if report.HeroesKept != 2 || report.PaymentsKept != 2 {
		t.Fatalf("unexpected kept counts: %+v", report)
	}
	if report.Matched != 1 {
		t.Fatalf("expected 1 match, got %d", report.Matched)
	}
	if len(report.HeroesUnmatched) != 1 || report.HeroesUnmatched[0].HeroName != "Mary Major" {
		t.Fatalf("expected Mary Major unmatched, got %+v", report.HeroesUnmatched)
	}
	if len(report.PaymentsUnmatched) != 1 || report.PaymentsUnmatched[0].SponsorName != "Stranger" {
		t.Fatalf("expected Stranger unmatched, got %+v", report.PaymentsUnmatched)
	}
	if report.Upsert.Created != 2 {
		t.Fatalf("expected upsert summary passed through, got %+v", report.Upsert)
	}

	// Every kept hero reaches the registry; the matched one carries payment.
	if len(registry.received) != 2 {
		t.Fatalf("expected 2 banners upserted, got %d", len(registry.received))
	}
	matched := registry.received[0]
	if !matched.PaymentVerified || matched.PaymentAmount != 95 || matched.TransactionID != "tx-1" {
		t.Fatalf("matched banner missing payment data: %+v", matched)
	}
	unmatched := registry.received[1]
	if unmatched.PaymentVerified {
		t.Fatalf("unmatched hero must arrive unverified: %+v", unmatched)
	}
}

func TestImportUnreadableSource(t *testing.T) {
	service := Service{Registry: &fakeUpserter{}}

	_, err := service.Import(context.Background(), failingSource{}, memory.NewSource([]string{"Your Name"}, nil))
	if !errors.Is(err, domainerrors.ErrSourceUnreadable) {
		t.Fatalf("expected ErrSourceUnreadable, got %v", err)
	}
}

func TestImportEmptySource(t *testing.T) {
	service := Service{Registry: &fakeUpserter{}}

	heroSource := memory.NewSource(nil, nil)
	paymentSource := memory.NewSource([]string{"Your Name"}, nil)

	_, err := service.Import(context.Background(), heroSource, paymentSource)
	if !errors.Is(err, domainerrors.ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestImportStoreFailure(t *testing.T) {
	service := Service{Registry: &fakeUpserter{fail: errors.New("db down")}}

	heroSource := memory.NewSource(
		[]string{"Service Name"},
		[][]string{{"John Smith"}},
	)
	paymentSource := memory.NewSource([]string{"Your Name"}, nil)

	_, err := service.Import(context.Background(), heroSource, paymentSource)
	if !errors.Is(err, domainerrors.ErrStoreFailed) {
		t.Fatalf("expected ErrStoreFailed, got %v", err)
	}
}
