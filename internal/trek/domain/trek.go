package domain

import "time"

type Trek struct {
	ID          string         `json:"_id"`
	RegionID    string         `json:"regionId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Slug        string         `json:"slug"`
	Overview    []OverviewItem `json:"overview"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Inclusions  []string       `json:"inclusions"`
	Exclusions  []string       `json:"exclusions"`
	Pricing     []PriceTier    `json:"pricing"`
	Gallery     []GalleryImage `json:"gallery"`
	FAQs        []FAQ          `json:"faqs"`
	Keywords    []string       `json:"keywords"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type OverviewItem struct {
	Icon        string `json:"icon"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
}

type ItineraryDay struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
}

// PriceTier is the per person price for a group size range.
type PriceTier struct {
	MinPersons int     `json:"minPersons"`
	MaxPersons int     `json:"maxPersons"`
	Price      float64 `json:"price"`
}

type GalleryImage struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TrekSummary is the listing projection served to the home page cards.
type TrekSummary struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Pricing     []PriceTier    `json:"pricing"`
	Slug        string         `json:"slug"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Image       string         `json:"image"`
}

func (t Trek) Summary() TrekSummary {
	return TrekSummary{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Pricing:     t.Pricing,
		Slug:        t.Slug,
		Itinerary:   t.Itinerary,
		Image:       t.Image,
	}
}

// LowestPrice returns the cheapest per person price across the pricing
// tiers. ok is false when the trek has no pricing.
func LowestPrice(pricing []PriceTier) (price float64, ok bool) {
	for i, tier := range pricing {
		if i == 0 || tier.Price < price {
			price = tier.Price
		}
	}
	return price, len(pricing) > 0
}

// GallerySources lists the image URLs of a gallery in order.
func GallerySources(gallery []GalleryImage) []string {
	out := make([]string, 0, len(gallery))
	for _, g := range gallery {
		out = append(out, g.Src)
	}
	return out
}
