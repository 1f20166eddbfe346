package domain

import (
	"fmt"
	"strings"
)

// ValidationError carries every problem found in a submitted document so the
// admin form can show them all at once.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func validationResult(details []string) error {
	if len(details) == 0 {
		return nil
	}
	return &ValidationError{Details: details}
}

func validateKeywords(keywords []string) []string {
	var details []string
	for i, k := range keywords {
		if blank(k) {
			details = append(details, fmt.Sprintf("Keyword %d: Must be a non-empty string", i+1))
		}
	}
	return details
}

// ValidateRegion checks a region document before create or update.
func ValidateRegion(r Region) error {
	var details []string
	if blank(r.Name) {
		details = append(details, "Region name is required and must be a non-empty string")
	}
	if blank(r.Description) {
		details = append(details, "Region description is required and must be a non-empty string")
	}
	if blank(r.Image) {
		details = append(details, "Region image is required and must be a non-empty string")
	}
	details = append(details, validateKeywords(r.Keywords)...)
	return validationResult(details)
}

// ValidateTrek checks a trek document, including every nested item.
func ValidateTrek(t Trek) error {
	var details []string
	add := func(format string, args ...any) {
		details = append(details, fmt.Sprintf(format, args...))
	}

	if blank(t.Name) {
		add("Trek name is required and must be a non-empty string")
	}
	if blank(t.Description) {
		add("Trek description is required and must be a non-empty string")
	}
	if blank(t.Image) {
		add("Trek image is required and must be a non-empty string")
	}

	for i, item := range t.Overview {
		if blank(item.Icon) {
			add("Overview item %d: Icon is required", i+1)
		}
		if blank(item.Heading) {
			add("Overview item %d: Heading is required", i+1)
		}
		if blank(item.Description) {
			add("Overview item %d: Description is required", i+1)
		}
	}

	for i, day := range t.Itinerary {
		if blank(day.Heading) {
			add("Itinerary item %d: Heading is required", i+1)
		}
		if blank(day.Description) {
			add("Itinerary item %d: Description is required", i+1)
		}
	}

	for i, s := range t.Inclusions {
		if blank(s) {
			add("Inclusion item %d: Must be a non-empty string", i+1)
		}
	}
	for i, s := range t.Exclusions {
		if blank(s) {
			add("Exclusion item %d: Must be a non-empty string", i+1)
		}
	}

	for i, p := range t.Pricing {
		if p.MinPersons <= 0 {
			add("Pricing item %d: minPersons must be a number greater than 0", i+1)
		}
		if p.MaxPersons <= 0 || p.MaxPersons < p.MinPersons {
			add("Pricing item %d: maxPersons must be a number greater than or equal to minPersons", i+1)
		}
		if p.Price < 0 {
			add("Pricing item %d: price must be a number greater than or equal to 0", i+1)
		}
	}

	for i, g := range t.Gallery {
		if blank(g.Src) {
			add("Gallery item %d: Image source is required", i+1)
		}
		if blank(g.Alt) {
			add("Gallery item %d: Alt text is required", i+1)
		}
		if blank(g.Caption) {
			add("Gallery item %d: Caption is required", i+1)
		}
	}

	for i, f := range t.FAQs {
		if blank(f.Question) {
			add("FAQ item %d: Question is required", i+1)
		}
		if blank(f.Answer) {
			add("FAQ item %d: Answer is required", i+1)
		}
	}

	details = append(details, validateKeywords(t.Keywords)...)
	return validationResult(details)
}

// NormalizeRegion trims every text field, fills the slug and replaces nil
// slices with empty ones.
func NormalizeRegion(r Region) Region {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Image = strings.TrimSpace(r.Image)
	r.Keywords = trimAll(r.Keywords)
	r.Slug = Slugify(r.Name)
	return r
}

// NormalizeTrek is the trek counterpart of NormalizeRegion.
func NormalizeTrek(t Trek) Trek {
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)
	t.Image = strings.TrimSpace(t.Image)
	t.Slug = Slugify(t.Name)

	overview := make([]OverviewItem, 0, len(t.Overview))
	for _, o := range t.Overview {
		overview = append(overview, OverviewItem{
			Icon:        strings.TrimSpace(o.Icon),
			Heading:     strings.TrimSpace(o.Heading),
			Description: strings.TrimSpace(o.Description),
		})
	}
	t.Overview = overview

	itinerary := make([]ItineraryDay, 0, len(t.Itinerary))
	for _, d := range t.Itinerary {
		itinerary = append(itinerary, ItineraryDay{
			Heading:     strings.TrimSpace(d.Heading),
			Description: strings.TrimSpace(d.Description),
		})
	}
	t.Itinerary = itinerary

	gallery := make([]GalleryImage, 0, len(t.Gallery))
	for _, g := range t.Gallery {
		gallery = append(gallery, GalleryImage{
			Src:     strings.TrimSpace(g.Src),
			Alt:     strings.TrimSpace(g.Alt),
			Caption: strings.TrimSpace(g.Caption),
		})
	}
	t.Gallery = gallery

	faqs := make([]FAQ, 0, len(t.FAQs))
	for _, f := range t.FAQs {
		faqs = append(faqs, FAQ{
			Question: strings.TrimSpace(f.Question),
			Answer:   strings.TrimSpace(f.Answer),
		})
	}
	t.FAQs = faqs

	if t.Pricing == nil {
		t.Pricing = []PriceTier{}
	}
	t.Inclusions = trimAll(t.Inclusions)
	t.Exclusions = trimAll(t.Exclusions)
	t.Keywords = trimAll(t.Keywords)
	return t
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
