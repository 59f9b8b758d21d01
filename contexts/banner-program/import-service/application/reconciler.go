package application

import (
	"herobanner/contexts/banner-program/import-service/domain/entities"
	"herobanner/contexts/banner-program/import-service/ports"
	"herobanner/internal/shared/namekey"
)

// Reconcile joins heroes to confirmed payments by normalized sponsor name.
//
// Accounting invariant: every hero lands in exactly one of Matched or
// HeroesUnmatched. Every confirmed payment with a usable key is accounted
// exactly once: the first payment at a key can match or end up in
// PaymentsUnmatched; later payments at the same key are represented only by
// the key's entry in DuplicatePaymentKeys.
func (s Service) Reconcile(heroes []entities.HeroRecord, payments []entities.PaymentRecord) ports.ReconciliationResult {
	byKey := make(map[string][]entities.PaymentRecord)
	var keyOrder []string
	for _, payment := range payments {
		if !payment.Confirmed {
			continue
		}
		key := namekey.Normalize(payment.SponsorName)
		if key == "" {
			continue
		}
		if _, seen := byKey[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byKey[key] = append(byKey[key], payment)
	}

	result := ports.ReconciliationResult{}
	for _, key := range keyOrder {
		if len(byKey[key]) > 1 {
			result.DuplicatePaymentKeys = append(result.DuplicatePaymentKeys, key)
		}
	}

	claimed := make(map[string]bool)
	for _, hero := range heroes {
		key := namekey.Normalize(hero.SponsorName)
		if key != "" {
			if candidates, ok := byKey[key]; ok {
				claimed[key] = true
				result.Matched = append(result.Matched, ports.MatchedPair{
					Hero:    hero,
					Payment: candidates[0],
				})
				continue
			}
		}
		result.HeroesUnmatched = append(result.HeroesUnmatched, hero)
	}

	for _, key := range keyOrder {
		if !claimed[key] {
			result.PaymentsUnmatched = append(result.PaymentsUnmatched, byKey[key][0])
		}
	}
	return result
}
