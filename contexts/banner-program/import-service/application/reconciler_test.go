package application

import (
	"testing"

	"herobanner/contexts/banner-program/import-service/domain/entities"
)

func hero(name, sponsor string) entities.HeroRecord {
	return entities.HeroRecord{HeroName: name, SponsorName: sponsor}
}

func payment(sponsor string, confirmed bool, amount float64) entities.PaymentRecord {
	return entities.PaymentRecord{SponsorName: sponsor, Confirmed: confirmed, Amount: amount, AmountKnown: true}
}

func TestReconcileMatchesByNormalizedSponsorName(t *testing.T) {
	service := Service{}
	heroes := []entities.HeroRecord{hero("John Smith", "jane  smith ")}
	payments := []entities.PaymentRecord{payment("JANE SMITH", true, 95)}

	result := service.Reconcile(heroes, payments)

	if len(result.Matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matched))
	}
	if len(result.HeroesUnmatched) != 0 || len(result.PaymentsUnmatched) != 0 {
		t.Fatalf("expected clean match, got %+v", result)
	}
}

func TestReconcileIgnoresUnconfirmedPayments(t *testing.T) {
	service := Service{}
	heroes := []entities.HeroRecord{hero("John Smith", "Jane Smith")}
	payments := []entities.PaymentRecord{payment("Jane Smith", false, 95)}

	result := service.Reconcile(heroes, payments)

	if len(result.Matched) != 0 {
		t.Fatal("unconfirmed payment must not match")
	}
	if len(result.HeroesUnmatched) != 1 {
		t.Fatalf("expected hero unmatched, got %+v", result)
	}
	if len(result.PaymentsUnmatched) != 0 {
		t.Fatalf("unconfirmed payments must not appear as unmatched, got %+v", result.PaymentsUnmatched)
	}
}

func TestReconcileBlankSponsorNeverMatches(t *testing.T) {
	service := Service{}
	heroes := []entities.HeroRecord{hero("Hero A", ""), hero("Hero B", "nan")}
	payments := []entities.PaymentRecord{payment("", true, 95)}

	result := service.Reconcile(heroes, payments)

	if len(result.Matched) != 0 {
		t.Fatal("blank sponsor keys must never match")
	}
	if len(result.HeroesUnmatched) != 2 {
		t.Fatalf("expected both heroes unmatched, got %d", len(result.HeroesUnmatched))
	}
}

func TestReconcileDuplicatePaymentsAccountedOnce(t *testing.T) {
	service := Service{}
	heroes := []entities.HeroRecord{hero("John Smith", "Jane Smith")}
	payments := []entities.PaymentRecord{
		payment("Jane Smith", true, 95),
		payment("jane smith", true, 190),
	}

	result := service.Reconcile(heroes, payments)

	if len(result.Matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result.Matched))
	}
	if result.Matched[0].Payment.Amount != 95 {
		t.Fatalf("expected first payment at the key to win, got %+v", result.Matched[0].Payment)
	}
	if len(result.DuplicatePaymentKeys) != 1 || result.DuplicatePaymentKeys[0] != "JANE SMITH" {
		t.Fatalf("expected duplicate key JANE SMITH, got %+v", result.DuplicatePaymentKeys)
	}
	if len(result.PaymentsUnmatched) != 0 {
		t.Fatalf("duplicates must not leak into unmatched, got %+v", result.PaymentsUnmatched)
	}
}

func TestReconcileSharedSponsorMatchesAllHeroes(t *testing.T) {
	service := Service{}
	heroes := []entities.HeroRecord{
		hero("Hero One", "Jane Smith"),
		hero("Hero Two", "Jane Smith"),
	}
	payments := []entities.PaymentRecord{payment("Jane Smith", true, 95)}

	result := service.Reconcile(heroes, payments)

	if len(result.Matched) != 2 {
		t.Fatalf("one payment should cover every hero of the sponsor, got %d matches", len(result.Matched))
	}
}

func TestReconcileAccountingIsComplete(t *testing.T) {
	service := Service{}
	heroes := []entities.HeroRecord{
		hero("Hero A", "Sponsor A"),
		hero("Hero B", "Sponsor B"),
		hero("Hero C", ""),
	}
	payments := []entities.PaymentRecord{
		payment("Sponsor A", true, 95),
		payment("Sponsor A", true, 95),
		payment("Sponsor X", true, 95),
		payment("Sponsor Y", false, 95),
	}

	result := service.Reconcile(heroes, payments)

	if got := len(result.Matched) + len(result.HeroesUnmatched); got != len(heroes) {
		t.Fatalf("every hero must land exactly once, got %d of %d", got, len(heroes))
	}
	// Confirmed keys: A (matched, duplicate), X (unmatched). Y is unconfirmed.
	if len(result.PaymentsUnmatched) != 1 || result.PaymentsUnmatched[0].SponsorName != "Sponsor X" {
		t.Fatalf("expected only Sponsor X unmatched, got %+v", result.PaymentsUnmatched)
	}
	if len(result.DuplicatePaymentKeys) != 1 || result.DuplicatePaymentKeys[0] != "SPONSOR A" {
		t.Fatalf("expected SPONSOR A flagged as duplicate, got %+v", result.DuplicatePaymentKeys)
	}
}
