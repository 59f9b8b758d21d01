package gormadapter

import (
	"time"

	"herobanner/contexts/banner-program/banner-registry/domain/entities"
	"herobanner/internal/shared/namekey"
)

// bannerModel is the persisted row shape. HeroKey and SponsorKey hold the
// normalized names so key lookups hit the unique index instead of
// normalizing in SQL.
type bannerModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	BannerID string `gorm:"column:banner_id;size:64;uniqueIndex"`

	HeroKey    string `gorm:"column:hero_key;size:255;index:idx_banner_key,unique"`
	SponsorKey string `gorm:"column:sponsor_key;size:255;index:idx_banner_key,unique"`

	HeroName       string `gorm:"column:hero_name;size:255"`
	SponsorName    string `gorm:"column:sponsor_name;size:255"`
	SponsorEmail   string `gorm:"column:sponsor_email;size:255"`
	SponsorPhone   string `gorm:"column:sponsor_phone;size:64"`
	Branch         string `gorm:"column:branch;size:128"`
	Rank           string `gorm:"column:rank;size:128"`
	ServiceDetail  string `gorm:"column:service_detail;size:512"`
	PhotoReference string `gorm:"column:photo_reference;size:1024"`

	PaymentVerified    bool    `gorm:"column:payment_verified"`
	PaymentAmount      float64 `gorm:"column:payment_amount"`
	PaymentAmountKnown bool    `gorm:"column:payment_amount_known"`
	PaymentDate        string  `gorm:"column:payment_date;size:64"`
	TransactionID      string  `gorm:"column:transaction_id;size:128"`

	PoleLocation       string `gorm:"column:pole_location;size:255"`
	Notes              string `gorm:"column:notes"`
	DocumentsVerified  bool   `gorm:"column:documents_verified"`
	PhotoVerified      bool   `gorm:"column:photo_verified"`
	ProofSent          bool   `gorm:"column:proof_sent"`
	ProofApproved      bool   `gorm:"column:proof_approved"`
	PrintApproved      bool   `gorm:"column:print_approved"`
	SubmittedToPrinter bool   `gorm:"column:submitted_to_printer"`
	ThankYouSent       bool   `gorm:"column:thank_you_sent"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bannerModel) TableName() string { return "banners" }

func bannerModelFromEntity(banner entities.BannerRecord) bannerModel {
	return bannerModel{
		BannerID:           banner.BannerID,
		HeroKey:            namekey.Normalize(banner.HeroName),
		SponsorKey:         namekey.Normalize(banner.SponsorName),
		HeroName:           banner.HeroName,
		SponsorName:        banner.SponsorName,
		SponsorEmail:       banner.SponsorEmail,
		SponsorPhone:       banner.SponsorPhone,
		Branch:             banner.Branch,
		Rank:               banner.Rank,
		ServiceDetail:      banner.ServiceDetail,
		PhotoReference:     banner.PhotoReference,
		PaymentVerified:    banner.PaymentVerified,
		PaymentAmount:      banner.PaymentAmount,
		PaymentAmountKnown: banner.PaymentAmountKnown,
		PaymentDate:        banner.PaymentDate,
		TransactionID:      banner.TransactionID,
		PoleLocation:       banner.PoleLocation,
		Notes:              banner.Notes,
		DocumentsVerified:  banner.DocumentsVerified,
		PhotoVerified:      banner.PhotoVerified,
		ProofSent:          banner.ProofSent,
		ProofApproved:      banner.ProofApproved,
		PrintApproved:      banner.PrintApproved,
		SubmittedToPrinter: banner.SubmittedToPrinter,
		ThankYouSent:       banner.ThankYouSent,
		CreatedAt:          banner.CreatedAt,
		UpdatedAt:          banner.UpdatedAt,
	}
}

func (m bannerModel) toEntity() entities.BannerRecord {
	return entities.BannerRecord{
		BannerID:           m.BannerID,
		HeroName:           m.HeroName,
		SponsorName:        m.SponsorName,
		SponsorEmail:       m.SponsorEmail,
		SponsorPhone:       m.SponsorPhone,
		Branch:             m.Branch,
		Rank:               m.Rank,
		ServiceDetail:      m.ServiceDetail,
		PhotoReference:     m.PhotoReference,
		PaymentVerified:    m.PaymentVerified,
		PaymentAmount:      m.PaymentAmount,
		PaymentAmountKnown: m.PaymentAmountKnown,
		PaymentDate:        m.PaymentDate,
		TransactionID:      m.TransactionID,
		PoleLocation:       m.PoleLocation,
		Notes:              m.Notes,
		DocumentsVerified:  m.DocumentsVerified,
		PhotoVerified:      m.PhotoVerified,
		ProofSent:          m.ProofSent,
		ProofApproved:      m.ProofApproved,
		PrintApproved:      m.PrintApproved,
		SubmittedToPrinter: m.SubmittedToPrinter,
		ThankYouSent:       m.ThankYouSent,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// updateColumns lists every mutable column explicitly so zero values
// (false flags, empty strings) are written too.
func (m bannerModel) updateColumns() map[string]any {
	return map[string]any{
		"hero_key":             m.HeroKey,
		"sponsor_key":          m.SponsorKey,
		"hero_name":            m.HeroName,
		"sponsor_name":         m.SponsorName,
		"sponsor_email":        m.SponsorEmail,
		"sponsor_phone":        m.SponsorPhone,
		"branch":               m.Branch,
		"rank":                 m.Rank,
		"service_detail":       m.ServiceDetail,
		"photo_reference":      m.PhotoReference,
		"payment_verified":     m.PaymentVerified,
		"payment_amount":       m.PaymentAmount,
		"payment_amount_known": m.PaymentAmountKnown,
		"payment_date":         m.PaymentDate,
		"transaction_id":       m.TransactionID,
		"pole_location":        m.PoleLocation,
		"notes":                m.Notes,
		"documents_verified":   m.DocumentsVerified,
		"photo_verified":       m.PhotoVerified,
		"proof_sent":           m.ProofSent,
		"proof_approved":       m.ProofApproved,
		"print_approved":       m.PrintApproved,
		"submitted_to_printer": m.SubmittedToPrinter,
		"thank_you_sent":       m.ThankYouSent,
		"updated_at":           m.UpdatedAt,
	}
}
