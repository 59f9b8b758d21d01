package httpadapter

import (
	"context"
	"log/slog"

	"herobanner/contexts/banner-program/import-service/application"
	"herobanner/contexts/banner-program/import-service/ports"
	httptransport "herobanner/contexts/banner-program/import-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ImportHandler(ctx context.Context, heroSource, paymentSource ports.RowSource) (httptransport.ImportResponse, error) {
	report, err := h.Service.Import(ctx, heroSource, paymentSource)
	if err != nil {
		return httptransport.ImportResponse{}, err
	}
	return httptransport.ImportResponse{Status: "success", Data: ToDTO(report)}, nil
}

func ToDTO(report ports.ImportReport) httptransport.ImportReportDTO {
	dto := httptransport.ImportReportDTO{
		HeroesKept:           report.HeroesKept,
		PaymentsKept:         report.PaymentsKept,
		Matched:              report.Matched,
		DuplicatePaymentKeys: report.DuplicatePaymentKeys,
		Upsert: httptransport.UpsertSummaryDTO{
			Created:   report.Upsert.Created,
			Updated:   report.Upsert.Updated,
			Unchanged: report.Upsert.Unchanged,
		},
	}
	for _, skip := range report.HeroSkips {
		dto.HeroSkips = append(dto.HeroSkips, httptransport.SkipReasonDTO{
			Row: skip.Row, Code: string(skip.Code), Detail: skip.Detail,
		})
	}
	for _, skip := range report.PaymentSkips {
		dto.PaymentSkips = append(dto.PaymentSkips, httptransport.SkipReasonDTO{
			Row: skip.Row, Code: string(skip.Code), Detail: skip.Detail,
		})
	}
	for _, hero := range report.HeroesUnmatched {
		dto.HeroesUnmatched = append(dto.HeroesUnmatched, httptransport.UnmatchedHeroDTO{
			HeroName:    hero.HeroName,
			SponsorName: hero.SponsorName,
		})
	}
	for _, payment := range report.PaymentsUnmatched {
		dto.PaymentsUnmatched = append(dto.PaymentsUnmatched, httptransport.UnmatchedPaymentDTO{
			SponsorName:   payment.SponsorName,
			Amount:        payment.Amount,
			AmountKnown:   payment.AmountKnown,
			PaymentDate:   payment.PaymentDate,
			TransactionID: payment.TransactionID,
		})
	}
	return dto
}
