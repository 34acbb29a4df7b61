package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileKind separates producers from companies.
type ProfileKind string

const (
	ProfileKindProducer ProfileKind = "produtor"
	ProfileKindCompany  ProfileKind = "empresa"
)

// IsValid checks if the ProfileKind is a known value.
func (k ProfileKind) IsValid() bool {
	return k == ProfileKindProducer || k == ProfileKindCompany
}

// Role maps a profile kind to the role it grants.
func (k ProfileKind) Role() Role {
	if k == ProfileKindCompany {
		return RoleCompany
	}

	return RoleProducer
}

// Label returns the display name used in templates.
func (k ProfileKind) Label() string {
	switch k {
	case ProfileKindProducer:
		return "Produtor"
	case ProfileKindCompany:
		return "Empresa"
	default:
		return string(k)
	}
}

// DefaultRating is the aggregate a profile starts with before any review.
var DefaultRating = decimal.NewFromInt(5)

// Profile is the public business page of a seller, one per User.
type Profile struct {
	ID           uuid.UUID       // Profile identifier.
	UserID       uuid.UUID       // Owner account (1:1).
	Kind         ProfileKind     // produtor or empresa.
	TaxID        string          // CPF or CNPJ.
	Address      string          // Street address.
	City         string          // City name.
	State        string          // Two-letter state code.
	Bio          string          // Short biography.
	Description  string          // Long description.
	News         string          // Latest announcement shown on the page.
	ExtraContact string          // Free-form contact line.
	LogoKey      string          // Blob key of the uploaded logo, empty when absent.
	Rating       decimal.Decimal // Average stars, two decimal places.
	TotalSales   int             // Units sold across all products.
	TotalReviews int             // Number of reviews received.
	Verified     bool            // Set by administrators.
	Producer     *Producer       // Set when Kind is produtor and the record exists.
	Company      *Company        // Set when Kind is empresa and the record exists.
	OwnerName    string          // Display name of the owner, filled on reads.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Producer holds producer-only business fields. Identity stays on User and Profile.
type Producer struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	FarmName  string // Name of the farm or property.
	Phone     string
}

// Company holds company-only business fields. Identity stays on User and Profile.
type Company struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	TradeName string // Nome fantasia.
	Phone     string
}

// DisplayName picks the most specific name available for the profile page.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.Producer != nil && p.Producer.FarmName != "" {
		return p.Producer.FarmName
	}
	if p.Company != nil && p.Company.TradeName != "" {
		return p.Company.TradeName
	}

	return p.OwnerName
}

// ApplyReview folds one more star rating into the running average.
func (p *Profile) ApplyReview(stars int) {
	total := p.Rating.Mul(decimal.NewFromInt(int64(p.TotalReviews)))
	p.TotalReviews++
	p.Rating = total.Add(decimal.NewFromInt(int64(stars))).
		Div(decimal.NewFromInt(int64(p.TotalReviews))).
		Round(2)
}
