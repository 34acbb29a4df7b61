package entity

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the closed set of catalog sections.
type Category string

const (
	CategoryAll        Category = "todas"
	CategoryGreens     Category = "verduras"
	CategoryVegetables Category = "legumes"
	CategoryFruits     Category = "frutas"
	CategorySpices     Category = "condimentos"
	CategoryGrocery    Category = "mercearia"
)

var categoryLabels = map[Category]string{
	CategoryAll:        "Todas Categorias",
	CategoryGreens:     "Verduras, folhas e ervas",
	CategoryVegetables: "Legumes Orgânicos",
	CategoryFruits:     "Frutas Orgânicas",
	CategorySpices:     "Condimento & Tempero regional",
	CategoryGrocery:    "Mercearia Orgânica",
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryGreens,
		CategoryVegetables,
		CategoryFruits,
		CategorySpices,
		CategoryGrocery,
	}
}

// IsValid checks if the Category is a known value.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]

	return ok
}

// Label returns the human readable category name.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return string(c)
}

var imageExts = []string{"jpg", "jpeg", "png", "gif", "webp"}

// IsImageFile reports whether the filename carries an accepted image extension.
func IsImageFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	return slices.Contains(imageExts, ext)
}

// Product is an item listed by a seller profile.
type Product struct {
	ID               uuid.UUID        // Product identifier.
	ProfileID        uuid.UUID        // Owning seller profile.
	LegacyProducerID *uuid.UUID       // Producer record from the old ownership model, nil for new products.
	Name             string           // Display name.
	Description      string           // Long description.
	Category         Category         // Catalog section.
	Price            decimal.Decimal  // Current unit price.
	OriginalPrice    *decimal.Decimal // Price before discount, nil when not on sale.
	ImageKey         string           // Blob key of the product image.
	ProductionDate   *time.Time       // Harvest or production date.
	LogisticsStatus  string           // Free-form logistics note.
	Stock            int              // Units available.
	Sales            int              // Units sold.
	Rating           decimal.Decimal  // Average rating.
	Active           bool             // Inactive products are hidden from the catalog.
	Featured         bool             // Featured products are listed first.
	Profile          *Profile         // Seller, filled on detail reads.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BelongsTo reports whether the product is owned by the given profile.
func (p *Product) BelongsTo(profileID uuid.UUID) bool {
	return p != nil && p.ProfileID == profileID
}

// ShortDescription truncates the description to at most n runes.
func (p *Product) ShortDescription(n int) string {
	runes := []rune(strings.TrimSpace(p.Description))
	if len(runes) <= n {
		return string(runes)
	}

	return string(runes[:n])
}

// ProductFilter narrows a catalog listing.
type ProductFilter struct {
	Category   Category   // Empty or todas means every category.
	Search     string     // Case-insensitive match on name or description.
	ProfileID  *uuid.UUID // Restrict to a single seller.
	OnlyActive bool
}
