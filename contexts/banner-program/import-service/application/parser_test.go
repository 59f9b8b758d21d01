package application

import (
	"testing"

	"herobanner/contexts/banner-program/import-service/domain/entities"
)

var heroHeader = []string{"Status", "Service Name", "Branch", "Rank", "Name of Buyer", "Email", "Phone", "Image"}

func TestParseHeroesKeepsPublishedRows(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"PUBLISHED", "John Smith", "Army", "SGT", "Jane Smith", "jane@example.com", "555-0100", "wix:image://v1/abc"},
		{"DRAFT", "Draft Hero", "Navy", "", "Someone", "", "", ""},
		{"PUBLISHED", "", "Army", "", "No Name Buyer", "", "", ""},
	}

	heroes, skips := service.ParseHeroes(heroHeader, rows)

	if len(heroes) != 1 {
		t.Fatalf("expected 1 hero, got %d", len(heroes))
	}
	if heroes[0].HeroName != "John Smith" || heroes[0].SponsorName != "Jane Smith" {
		t.Fatalf("unexpected hero: %+v", heroes[0])
	}
	if len(skips) != 2 {
		t.Fatalf("expected 2 skips, got %d: %+v", len(skips), skips)
	}
	if skips[0].Code != entities.SkipDraft || skips[0].Row != 2 {
		t.Fatalf("expected draft skip at row 2, got %+v", skips[0])
	}
	if skips[1].Code != entities.SkipMissingName || skips[1].Row != 3 {
		t.Fatalf("expected missing name skip at row 3, got %+v", skips[1])
	}
}

func TestParseHeroesBlanksInvalidPhoto(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"PUBLISHED", "Hero A", "Army", "", "Buyer", "a@example.com", "", "https://example.com/photo.jpg"},
		{"PUBLISHED", "Hero B", "Army", "", "Buyer", "b@example.com", "", "wix:image://v1/def"},
	}

	heroes, _ := service.ParseHeroes(heroHeader, rows)

	if len(heroes) != 2 {
		t.Fatalf("expected 2 heroes, got %d", len(heroes))
	}
	if heroes[0].PhotoReference != "" {
		t.Fatalf("expected non-CMS photo reference to be blanked, got %q", heroes[0].PhotoReference)
	}
	if heroes[1].PhotoReference != "wix:image://v1/def" {
		t.Fatalf("expected CMS photo reference kept, got %q", heroes[1].PhotoReference)
	}
}

func TestParseHeroesHeaderSynonyms(t *testing.T) {
	service := Service{}
	header := []string{"Hero Name", "Service", "Sponsor Name"}
	rows := [][]string{{"Mary Major", "Air Force", "Paul Major"}}

	heroes, skips := service.ParseHeroes(header, rows)

	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
	if len(heroes) != 1 {
		t.Fatalf("expected 1 hero, got %d", len(heroes))
	}
	if heroes[0].Branch != "Air Force" {
		t.Fatalf("expected branch from Service column, got %q", heroes[0].Branch)
	}
}

func TestParseHeroesMissingRequiredColumn(t *testing.T) {
	service := Service{}
	header := []string{"Status", "Branch"}
	rows := [][]string{{"PUBLISHED", "Army"}}

	heroes, skips := service.ParseHeroes(header, rows)

	if len(heroes) != 0 {
		t.Fatalf("expected no heroes without a name column, got %d", len(heroes))
	}
	found := false
	for _, skip := range skips {
		if skip.Code == entities.SkipMissingColumn && skip.Row == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a file-level missing_column skip, got %+v", skips)
	}
}

func TestParseHeroesTreatsNanAsEmpty(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"PUBLISHED", "Hero", "nan", "", "nan", "nan", "", "nan"},
	}

	heroes, _ := service.ParseHeroes(heroHeader, rows)

	if len(heroes) != 1 {
		t.Fatalf("expected 1 hero, got %d", len(heroes))
	}
	hero := heroes[0]
	if hero.Branch != "" || hero.SponsorName != "" || hero.SponsorEmail != "" || hero.PhotoReference != "" {
		t.Fatalf("expected nan cells to be empty, got %+v", hero)
	}
}

var paymentHeader = []string{"Your Name", "Status", "One Banner", "Created date", "Id"}

func TestParsePaymentsNestedAmountCell(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"Jane Smith", "CONFIRMED", `[["One Banner","$95"]]`, "2024-05-01", "tx-1"},
	}

	payments, skips := service.ParsePayments(paymentHeader, rows)

	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
	if len(payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(payments))
	}
	p := payments[0]
	if !p.Confirmed || !p.AmountKnown || p.Amount != 95 {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestParsePaymentsPlainAmount(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"A", "CONFIRMED", "$1,095.50", "", "tx-2"},
		{"B", "CONFIRMED", "95.00", "", "tx-3"},
	}

	payments, _ := service.ParsePayments(paymentHeader, rows)

	if payments[0].Amount != 1095.50 || !payments[0].AmountKnown {
		t.Fatalf("unexpected amount: %+v", payments[0])
	}
	if payments[1].Amount != 95 || !payments[1].AmountKnown {
		t.Fatalf("unexpected amount: %+v", payments[1])
	}
}

func TestParsePaymentsMalformedAmountKeepsRow(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"Jane Smith", "CONFIRMED", "[not json", "", "tx-4"},
		{"Bob Lee", "CONFIRMED", "", "", "tx-5"},
	}

	payments, skips := service.ParsePayments(paymentHeader, rows)

	if len(skips) != 0 {
		t.Fatalf("unexpected skips: %+v", skips)
	}
	if len(payments) != 2 {
		t.Fatalf("expected malformed amounts to keep their rows, got %d", len(payments))
	}
	for _, p := range payments {
		if p.AmountKnown || p.Amount != 0 {
			t.Fatalf("expected unknown amount, got %+v", p)
		}
	}
}

func TestParsePaymentsStripsParenthetical(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"Bob Lee (for wife's banner)", "CONFIRMED", "$95", "", "tx-6"},
	}

	payments, _ := service.ParsePayments(paymentHeader, rows)

	if len(payments) != 1 || payments[0].SponsorName != "Bob Lee" {
		t.Fatalf("expected parenthetical stripped, got %+v", payments)
	}
}

func TestParsePaymentsSkipsMissingName(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"", "CONFIRMED", "$95", "", "tx-7"},
		{"nan", "CONFIRMED", "$95", "", "tx-8"},
	}

	payments, skips := service.ParsePayments(paymentHeader, rows)

	if len(payments) != 0 {
		t.Fatalf("expected no payments, got %+v", payments)
	}
	if len(skips) != 2 || skips[0].Code != entities.SkipMissingName {
		t.Fatalf("expected missing name skips, got %+v", skips)
	}
}

func TestParsePaymentsUnconfirmedKept(t *testing.T) {
	service := Service{}
	rows := [][]string{
		{"Pending Person", "PENDING", "$95", "", "tx-9"},
	}

	payments, _ := service.ParsePayments(paymentHeader, rows)

	if len(payments) != 1 || payments[0].Confirmed {
		t.Fatalf("expected unconfirmed payment kept with Confirmed=false, got %+v", payments)
	}
}
