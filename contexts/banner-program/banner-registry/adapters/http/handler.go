package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"herobanner/contexts/banner-program/banner-registry/application"
	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	domainerrors "herobanner/contexts/banner-program/banner-registry/domain/errors"
	httptransport "herobanner/contexts/banner-program/banner-registry/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListBannersHandler(ctx context.Context, statusFilter string) (httptransport.ListBannersResponse, error) {
	banners, err := h.Service.ListBanners(ctx, statusFilter)
	if err != nil {
		return httptransport.ListBannersResponse{}, err
	}
	resp := httptransport.ListBannersResponse{
		Status: "success",
		Data:   make([]httptransport.BannerDTO, 0, len(banners)),
	}
	for _, banner := range banners {
		resp.Data = append(resp.Data, ToDTO(banner))
	}
	return resp, nil
}

func (h Handler) GetBannerHandler(ctx context.Context, bannerID string) (httptransport.GetBannerResponse, error) {
	banner, err := h.Service.GetBanner(ctx, bannerID)
	if err != nil {
		return httptransport.GetBannerResponse{}, err
	}
	return httptransport.GetBannerResponse{Status: "success", Data: ToDTO(banner)}, nil
}

// UpdateByNameHandler surfaces ambiguity to the caller: on
// ErrAmbiguousBanner the response still carries the candidate list so the
// server can return it with the conflict status.
func (h Handler) UpdateByNameHandler(ctx context.Context, req httptransport.UpdateByNameRequest) (httptransport.UpdateByNameResponse, error) {
	outcome, err := h.Service.UpdateByName(ctx, req.HeroName, req.Field, req.Value)
	if err != nil {
		resp := httptransport.UpdateByNameResponse{}
		if errors.Is(err, domainerrors.ErrAmbiguousBanner) {
			resp.Status = "ambiguous"
			for _, candidate := range outcome.Candidates {
				resp.Candidates = append(resp.Candidates, ToDTO(candidate))
			}
		}
		return resp, err
	}
	return httptransport.UpdateByNameResponse{Status: "success", Data: ToDTO(outcome.Banner)}, nil
}

func (h Handler) PatchBannerHandler(ctx context.Context, bannerID string, req httptransport.PatchBannerRequest) (httptransport.GetBannerResponse, error) {
	banner, err := h.Service.PatchBanner(ctx, bannerID, req.Fields)
	if err != nil {
		return httptransport.GetBannerResponse{}, err
	}
	return httptransport.GetBannerResponse{Status: "success", Data: ToDTO(banner)}, nil
}

func (h Handler) SummaryHandler(ctx context.Context) (httptransport.SummaryResponse, error) {
	summary, err := h.Service.Summary(ctx)
	if err != nil {
		return httptransport.SummaryResponse{}, err
	}
	resp := httptransport.SummaryResponse{Status: "success"}
	resp.Data.Total = summary.Total
	for _, item := range summary.ByStatus {
		resp.Data.ByStatus = append(resp.Data.ByStatus, httptransport.StatusCountDTO{
			Status: string(item.Status),
			Count:  item.Count,
		})
	}
	return resp, nil
}

func ToDTO(banner entities.BannerRecord) httptransport.BannerDTO {
	return httptransport.BannerDTO{
		BannerID:           banner.BannerID,
		HeroName:           banner.HeroName,
		SponsorName:        banner.SponsorName,
		SponsorEmail:       banner.SponsorEmail,
		SponsorPhone:       banner.SponsorPhone,
		Branch:             banner.Branch,
		Rank:               banner.Rank,
		ServiceDetail:      banner.ServiceDetail,
		PhotoReference:     banner.PhotoReference,
		InfoComplete:       banner.InfoComplete(),
		PaymentVerified:    banner.PaymentVerified,
		PaymentAmount:      banner.PaymentAmount,
		PaymentAmountKnown: banner.PaymentAmountKnown,
		PoleLocation:       banner.PoleLocation,
		Notes:              banner.Notes,
		DocumentsVerified:  banner.DocumentsVerified,
		PhotoVerified:      banner.PhotoVerified,
		ProofSent:          banner.ProofSent,
		ProofApproved:      banner.ProofApproved,
		PrintApproved:      banner.PrintApproved,
		SubmittedToPrinter: banner.SubmittedToPrinter,
		ThankYouSent:       banner.ThankYouSent,
		Status:             string(banner.Status()),
		CreatedAt:          banner.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          banner.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
