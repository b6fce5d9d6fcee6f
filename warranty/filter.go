package warranty

import (
	"strings"
	"time"

	"github.com/LuminLynx/ProductCareHub/models"
)

// FilterOptions narrows a joined product list. Zero values mean "no
// filter" for their field. RatingOf must be set for MinRating to apply; it
// resolves a product's average review rating.
type FilterOptions struct {
	Query     string
	Status    Status
	BrandID   string
	MinRating float64
	RatingOf  func(productID string) float64
}

// FilterProducts applies the dashboard filters: free-text match against
// product name, model and brand name, warranty status, brand and minimum
// average rating.
func FilterProducts(products []models.ProductWithBrand, opts FilterOptions, now time.Time) []models.ProductWithBrand {
	query := strings.ToLower(opts.Query)
	filtered := make([]models.ProductWithBrand, 0, len(products))
	for _, p := range products {
		if query != "" {
			haystack := strings.ToLower(p.Name + " " + p.Model + " " + p.Brand.Name)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		if opts.Status != "" && StatusAt(p.WarrantyExpiration, now) != opts.Status {
			continue
		}
		if opts.BrandID != "" && p.BrandID != opts.BrandID {
			continue
		}
		if opts.MinRating > 0 && opts.RatingOf != nil && opts.RatingOf(p.ID) < opts.MinRating {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Stats are the dashboard counters.
type Stats struct {
	Total    int `json:"total"`
	Valid    int `json:"valid"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}

// Tally counts products per warranty status.
func Tally(products []models.ProductWithBrand, now time.Time) Stats {
	stats := Stats{Total: len(products)}
	for _, p := range products {
		switch StatusAt(p.WarrantyExpiration, now) {
		case StatusValid:
			stats.Valid++
		case StatusExpiring:
			stats.Expiring++
		case StatusExpired:
			stats.Expired++
		}
	}
	return stats
}
