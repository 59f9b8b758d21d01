package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"herobanner/contexts/banner-program/notification-service/application"
	"herobanner/contexts/banner-program/notification-service/ports"
	httptransport "herobanner/contexts/banner-program/notification-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SendProofsHandler(ctx context.Context) (httptransport.SendProofsResponse, error) {
	stats, sent, err := h.Service.SendProofNotifications(ctx)
	if err != nil {
		return httptransport.SendProofsResponse{}, err
	}
	resp := httptransport.SendProofsResponse{Status: "success"}
	resp.Data.Sent = stats.Sent
	resp.Data.Failed = stats.Failed
	resp.Data.Skipped = stats.Skipped
	for _, message := range sent {
		resp.Data.Messages = append(resp.Data.Messages, toMessageDTO(message))
	}
	return resp, nil
}

func (h Handler) ProcessApprovalsHandler(ctx context.Context, req httptransport.ProcessApprovalsRequest) (httptransport.ProcessApprovalsResponse, error) {
	replies := make([]ports.InboxMessage, 0, len(req.Replies))
	for _, reply := range req.Replies {
		replies = append(replies, ports.InboxMessage{Sender: reply.Sender, Subject: reply.Subject})
	}
	results, err := h.Service.ProcessApprovalReplies(ctx, replies)
	if err != nil {
		return httptransport.ProcessApprovalsResponse{}, err
	}
	resp := httptransport.ProcessApprovalsResponse{
		Status: "success",
		Data:   make([]httptransport.ApprovalResultDTO, 0, len(results)),
	}
	for _, result := range results {
		resp.Data = append(resp.Data, httptransport.ApprovalResultDTO{
			BannerID:     result.BannerID,
			HeroName:     result.HeroName,
			SponsorEmail: result.SponsorEmail,
		})
	}
	return resp, nil
}

func toMessageDTO(message ports.Message) httptransport.MessageDTO {
	return httptransport.MessageDTO{
		MessageID: message.MessageID,
		Kind:      string(message.Kind),
		BannerID:  message.BannerID,
		Recipient: message.Recipient,
		Subject:   message.Subject,
		CreatedAt: message.CreatedAt.UTC().Format(time.RFC3339),
	}
}
