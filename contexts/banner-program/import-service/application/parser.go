package application

import (
	"encoding/json"
	"strconv"
	"strings"

	"herobanner/contexts/banner-program/import-service/domain/entities"
	"herobanner/internal/shared/namekey"
)

// photoReferencePrefix marks a real uploaded photo in the CMS export.
// Anything else in the image column is a placeholder.
const photoReferencePrefix = "wix:"

// ParseHeroes converts hero export rows into HeroRecords. Draft rows and
// rows without a hero name are skipped with a reason; nothing here aborts
// the batch. Input order is preserved.
func (s Service) ParseHeroes(header []string, rows [][]string) ([]entities.HeroRecord, []entities.SkipReason) {
	indexes, skips := resolveColumns(header, heroColumns)

	heroes := make([]entities.HeroRecord, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		if _, ok := indexes[fieldPublicationState]; ok {
			state := strings.ToUpper(cell(row, indexes, fieldPublicationState))
			if state != string(entities.PublicationPublished) {
				skips = append(skips, entities.SkipReason{
					Row:    rowNum,
					Code:   entities.SkipDraft,
					Detail: state,
				})
				continue
			}
		}

		heroName := cell(row, indexes, fieldHeroName)
		if heroName == "" {
			skips = append(skips, entities.SkipReason{
				Row:  rowNum,
				Code: entities.SkipMissingName,
			})
			continue
		}

		photo := cell(row, indexes, fieldPhotoReference)
		if !strings.HasPrefix(photo, photoReferencePrefix) {
			photo = ""
		}

		heroes = append(heroes, entities.HeroRecord{
			HeroName:       heroName,
			SponsorName:    cell(row, indexes, fieldSponsorName),
			SponsorEmail:   cell(row, indexes, fieldSponsorEmail),
			SponsorPhone:   cell(row, indexes, fieldSponsorPhone),
			Branch:         cell(row, indexes, fieldBranch),
			Rank:           cell(row, indexes, fieldRank),
			ServiceDetail:  cell(row, indexes, fieldServiceDetail),
			PhotoReference: photo,
		})
	}
	return heroes, skips
}

// ParsePayments converts payment export rows into PaymentRecords. Rows
// without a payer name are skipped; a malformed amount cell keeps the row
// with AmountKnown=false so it can still match a hero.
func (s Service) ParsePayments(header []string, rows [][]string) ([]entities.PaymentRecord, []entities.SkipReason) {
	indexes, skips := resolveColumns(header, paymentColumns)

	payments := make([]entities.PaymentRecord, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 1

		name := namekey.StripParenthetical(cell(row, indexes, fieldSponsorName))
		if name == "" || strings.EqualFold(name, "nan") {
			skips = append(skips, entities.SkipReason{
				Row:  rowNum,
				Code: entities.SkipMissingName,
			})
			continue
		}

		state := strings.ToUpper(cell(row, indexes, fieldPaymentState))
		amount, known := decodeAmount(cell(row, indexes, fieldAmount))

		payments = append(payments, entities.PaymentRecord{
			SponsorName:   name,
			Confirmed:     state == "CONFIRMED",
			Amount:        amount,
			AmountKnown:   known,
			PaymentDate:   cell(row, indexes, fieldPaymentDate),
			TransactionID: cell(row, indexes, fieldTransactionID),
		})
	}
	return payments, skips
}

// decodeAmount handles the two amount encodings the payment export uses:
// a nested list cell like [["One Banner","$95"]] and a plain amount like
// "$95" or "95.00". Malformed cells yield an unknown amount, not an error.
func decodeAmount(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if strings.HasPrefix(raw, "[") {
		var pairs [][]string
		if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
			return 0, false
		}
		if len(pairs) == 0 || len(pairs[0]) < 2 {
			return 0, false
		}
		raw = pairs[0][1]
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(raw, "$"), ",", ""))
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
