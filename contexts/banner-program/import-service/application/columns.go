package application

import (
	"strings"

	"herobanner/contexts/banner-program/import-service/domain/entities"
)

// Logical fields resolved against export headers. Each field declares the
// accepted header spellings in preference order; resolution happens once
// per import, not per row.
type columnSpec struct {
	field    string
	aliases  []string
	required bool
}

const (
	fieldPublicationState = "publication_state"
	fieldHeroName         = "hero_name"
	fieldBranch           = "branch"
	fieldRank             = "rank"
	fieldServiceDetail    = "service_detail"
	fieldSponsorName      = "sponsor_name"
	fieldSponsorEmail     = "sponsor_email"
	fieldSponsorPhone     = "sponsor_phone"
	fieldPhotoReference   = "photo_reference"
	fieldPaymentState     = "payment_state"
	fieldAmount           = "amount"
	fieldPaymentDate      = "payment_date"
	fieldTransactionID    = "transaction_id"
)

var heroColumns = []columnSpec{
	{field: fieldPublicationState, aliases: []string{"Status"}},
	{field: fieldHeroName, aliases: []string{"Service Name", "Hero Name", "Name"}, required: true},
	{field: fieldBranch, aliases: []string{"Branch", "Service", "Service Branch"}},
	{field: fieldRank, aliases: []string{"Rank"}},
	{field: fieldServiceDetail, aliases: []string{"Service Details", "Years Served"}},
	{field: fieldSponsorName, aliases: []string{"Name of Buyer", "Sponsor Name", "Buyer"}},
	{field: fieldSponsorEmail, aliases: []string{"Email", "Sponsor Email"}},
	{field: fieldSponsorPhone, aliases: []string{"Phone", "Sponsor Phone"}},
	{field: fieldPhotoReference, aliases: []string{"Image", "Photo"}},
}

var paymentColumns = []columnSpec{
	{field: fieldSponsorName, aliases: []string{"Your Name", "Name", "Sponsor Name"}, required: true},
	{field: fieldPaymentState, aliases: []string{"Status"}},
	{field: fieldAmount, aliases: []string{"One Banner", "Amount", "Amount Paid"}},
	{field: fieldPaymentDate, aliases: []string{"Created date", "Payment Date", "Date"}},
	{field: fieldTransactionID, aliases: []string{"Id", "Transaction Id"}},
}

// resolveColumns maps logical fields to header indexes. Unresolved required
// fields are reported as file-level skip reasons; unresolved optional fields
// simply stay absent.
func resolveColumns(header []string, specs []columnSpec) (map[string]int, []entities.SkipReason) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	indexes := make(map[string]int, len(specs))
	var skips []entities.SkipReason
	for _, spec := range specs {
		idx := -1
		for _, alias := range spec.aliases {
			want := strings.ToLower(alias)
			for i, h := range normalized {
				if h == want {
					idx = i
					break
				}
			}
			if idx >= 0 {
				break
			}
		}
		if idx >= 0 {
			indexes[spec.field] = idx
			continue
		}
		if spec.required {
			skips = append(skips, entities.SkipReason{
				Code:   entities.SkipMissingColumn,
				Detail: spec.field,
			})
		}
	}
	return indexes, skips
}

// cell returns the trimmed value for a resolved field, treating the literal
// "nan" the CMS writes for blank cells as empty.
func cell(row []string, indexes map[string]int, field string) string {
	idx, ok := indexes[field]
	if !ok || idx >= len(row) {
		return ""
	}
	value := strings.TrimSpace(row[idx])
	if strings.EqualFold(value, "nan") {
		return ""
	}
	return value
}
