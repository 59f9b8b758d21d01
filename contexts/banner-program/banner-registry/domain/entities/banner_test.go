package entities

import "testing"

func completeBanner() BannerRecord {
	return BannerRecord{
		HeroName:       "John Smith",
		Branch:         "Army",
		SponsorName:    "Jane Smith",
		SponsorEmail:   "jane@example.com",
		PhotoReference: "wix:image://v1/abc",
	}
}

func TestInfoComplete(t *testing.T) {
	banner := completeBanner()
	if !banner.InfoComplete() {
		t.Fatal("expected complete banner")
	}

	missing := []func(*BannerRecord){
		func(b *BannerRecord) { b.HeroName = "" },
		func(b *BannerRecord) { b.Branch = "" },
		func(b *BannerRecord) { b.SponsorName = "" },
		func(b *BannerRecord) { b.SponsorEmail = "" },
		func(b *BannerRecord) { b.PhotoReference = "" },
	}
	for i, blank := range missing {
		b := completeBanner()
		blank(&b)
		if b.InfoComplete() {
			t.Fatalf("case %d: expected incomplete banner", i)
		}
	}
}

func TestStatusWaterfallOrder(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*BannerRecord)
		want  Status
	}{
		{"thank you sent wins over everything", func(b *BannerRecord) {
			b.ThankYouSent = true
			b.SubmittedToPrinter = true
			b.PrintApproved = true
		}, StatusComplete},
		{"submitted to printer", func(b *BannerRecord) {
			b.SubmittedToPrinter = true
			b.PrintApproved = true
		}, StatusSubmittedToPrinter},
		{"print approved", func(b *BannerRecord) {
			b.PrintApproved = true
			b.ProofApproved = true
		}, StatusApprovedForPrinting},
		{"proof approved", func(b *BannerRecord) {
			b.ProofApproved = true
			b.ProofSent = true
		}, StatusProofApprovedByCustomer},
		{"proof sent", func(b *BannerRecord) {
			b.ProofSent = true
			b.DocumentsVerified = true
			b.PhotoVerified = true
		}, StatusAwaitingCustomerApproval},
		{"both verifications done", func(b *BannerRecord) {
			b.DocumentsVerified = true
			b.PhotoVerified = true
		}, StatusReadyToSendProof},
		{"documents only", func(b *BannerRecord) {
			b.DocumentsVerified = true
		}, StatusDocsVerifiedPhotoPending},
		{"photo only", func(b *BannerRecord) {
			b.PhotoVerified = true
		}, StatusPhotoVerifiedDocsPending},
		{"paid and complete", func(b *BannerRecord) {
			b.PaymentVerified = true
		}, StatusPaidAwaitingVerification},
		{"paid but incomplete", func(b *BannerRecord) {
			b.PaymentVerified = true
			b.PhotoReference = ""
		}, StatusPaidInfoIncomplete},
		{"complete but unpaid", func(*BannerRecord) {}, StatusInfoCompletePaymentPending},
		{"nothing", func(b *BannerRecord) {
			*b = BannerRecord{}
		}, StatusIncomplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			banner := completeBanner()
			tc.setup(&banner)
			if got := banner.Status(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// The waterfall must be total: every combination of the workflow flags
// resolves to exactly one stage, even combinations only reachable through
// manual overrides.
func TestStatusTotalOverAllFlagCombinations(t *testing.T) {
	for mask := 0; mask < 1<<9; mask++ {
		banner := completeBanner()
		banner.PaymentVerified = mask&1 != 0
		banner.DocumentsVerified = mask&2 != 0
		banner.PhotoVerified = mask&4 != 0
		banner.ProofSent = mask&8 != 0
		banner.ProofApproved = mask&16 != 0
		banner.PrintApproved = mask&32 != 0
		banner.SubmittedToPrinter = mask&64 != 0
		banner.ThankYouSent = mask&128 != 0
		if mask&256 != 0 {
			banner.PhotoReference = ""
		}

		status := banner.Status()
		if status == "" {
			t.Fatalf("mask %d produced an empty status", mask)
		}
	}
}
