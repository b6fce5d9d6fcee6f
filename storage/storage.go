// Package storage is the in-memory entity store. It owns the four
// collections (brands, products, reviews, support requests) plus the
// service-provider directory, and computes the joined read views on
// demand. State is not persisted; New seeds a fresh store on every start.
package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LuminLynx/ProductCareHub/models"
	"github.com/LuminLynx/ProductCareHub/warranty"
)

// Store holds all application state. Construct it once with New and pass
// it to whoever needs it; there is no package-level instance.
type Store struct {
	mu              sync.RWMutex
	brands          map[string]models.Brand
	products        map[string]models.Product
	reviews         map[string]models.Review
	supportRequests map[string]models.SupportRequest
	providers       map[string]models.ServiceProvider
}

func New() *Store {
	s := &Store{
		brands:          make(map[string]models.Brand),
		products:        make(map[string]models.Product),
		reviews:         make(map[string]models.Review),
		supportRequests: make(map[string]models.SupportRequest),
		providers:       make(map[string]models.ServiceProvider),
	}
	s.seedBrands()
	s.seedProviders()
	return s
}

// Brands

func (s *Store) GetBrand(id string) (models.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	brand, ok := s.brands[id]
	return brand, ok
}

// GetAllBrands returns every brand sorted by name.
func (s *Store) GetAllBrands() []models.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	brands := make([]models.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].Name < brands[j].Name })
	return brands
}

func (s *Store) CreateBrand(nb models.NewBrand) models.Brand {
	s.mu.Lock()
	defer s.mu.Unlock()
	brand := models.Brand{
		ID:           uuid.NewString(),
		Name:         nb.Name,
		SupportEmail: nb.SupportEmail,
		SupportPhone: nb.SupportPhone,
		Website:      nb.Website,
		Category:     nb.Category,
	}
	s.brands[brand.ID] = brand
	return brand
}

// SearchBrands matches the query case-insensitively against brand names.
func (s *Store) SearchBrands(query string) []models.Brand {
	query = strings.ToLower(query)
	matches := []models.Brand{}
	for _, b := range s.GetAllBrands() {
		if strings.Contains(strings.ToLower(b.Name), query) {
			matches = append(matches, b)
		}
	}
	return matches
}

// Products

func (s *Store) GetProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	return product, ok
}

// GetProductWithBrand joins a product with its brand. A missing brand
// makes the product unresolvable here, same as a missing product.
func (s *Store) GetProductWithBrand(id string) (models.ProductWithBrand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productWithBrandLocked(id)
}

func (s *Store) productWithBrandLocked(id string) (models.ProductWithBrand, bool) {
	product, ok := s.products[id]
	if !ok {
		return models.ProductWithBrand{}, false
	}
	brand, ok := s.brands[product.BrandID]
	if !ok {
		return models.ProductWithBrand{}, false
	}
	return models.ProductWithBrand{Product: product, Brand: brand}, true
}

// GetProductWithDetails extends the brand join with the product's reviews
// and support requests, each newest-first.
func (s *Store) GetProductWithDetails(id string) (models.ProductWithDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	joined, ok := s.productWithBrandLocked(id)
	if !ok {
		return models.ProductWithDetails{}, false
	}
	return models.ProductWithDetails{
		Product:         joined.Product,
		Brand:           joined.Brand,
		Reviews:         s.reviewsByProductLocked(id),
		SupportRequests: s.supportRequestsByProductLocked(id),
	}, true
}

// GetAllProducts joins every product with its brand, dropping products
// whose brand cannot be resolved, and sorts newest purchase first.
func (s *Store) GetAllProducts() []models.ProductWithBrand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	joined := make([]models.ProductWithBrand, 0, len(s.products))
	for id := range s.products {
		if p, ok := s.productWithBrandLocked(id); ok {
			joined = append(joined, p)
		}
	}
	sort.Slice(joined, func(i, j int) bool {
		return joined[i].PurchaseDate.After(joined[j].PurchaseDate)
	})
	return joined
}

// CreateProduct stores a new product. The warranty expiration is derived
// here, once, from the purchase date; it is never revised afterwards.
func (s *Store) CreateProduct(np models.NewProduct) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	photos := np.PhotoURLs
	if photos == nil {
		photos = []string{}
	}
	product := models.Product{
		ID:                 uuid.NewString(),
		BrandID:            np.BrandID,
		Name:               np.Name,
		Model:              np.Model,
		SerialNumber:       np.SerialNumber,
		Category:           np.Category,
		PurchaseDate:       np.PurchaseDate,
		WarrantyExpiration: warranty.ExpirationFromPurchase(np.PurchaseDate),
		Notes:              np.Notes,
		ReceiptURL:         np.ReceiptURL,
		PhotoURLs:          photos,
	}
	s.products[product.ID] = product
	return product
}

func (s *Store) UpdateProduct(id string, upd models.ProductUpdate) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return models.Product{}, false
	}
	if upd.BrandID != nil {
		product.BrandID = *upd.BrandID
	}
	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Model != nil {
		product.Model = *upd.Model
	}
	if upd.SerialNumber != nil {
		product.SerialNumber = upd.SerialNumber
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if upd.PurchaseDate != nil {
		product.PurchaseDate = *upd.PurchaseDate
	}
	if upd.Notes != nil {
		product.Notes = upd.Notes
	}
	if upd.ReceiptURL != nil {
		product.ReceiptURL = upd.ReceiptURL
	}
	if upd.PhotoURLs != nil {
		product.PhotoURLs = *upd.PhotoURLs
	}
	s.products[id] = product
	return product, true
}

// DeleteProduct removes a product together with its reviews and support
// requests. Returns false when the id is unknown.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false
	}
	for rid, r := range s.reviews {
		if r.ProductID == id {
			delete(s.reviews, rid)
		}
	}
	for sid, sr := range s.supportRequests {
		if sr.ProductID == id {
			delete(s.supportRequests, sid)
		}
	}
	delete(s.products, id)
	return true
}

// SearchProducts matches the query case-insensitively against product
// name, model and brand name, over the brand-joined list.
func (s *Store) SearchProducts(query string) []models.ProductWithBrand {
	query = strings.ToLower(query)
	matches := []models.ProductWithBrand{}
	for _, p := range s.GetAllProducts() {
		haystack := strings.ToLower(p.Name + " " + p.Model + " " + p.Brand.Name)
		if strings.Contains(haystack, query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Reviews

func (s *Store) GetReview(id string) (models.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	review, ok := s.reviews[id]
	return review, ok
}

func (s *Store) GetReviewsByProduct(productID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reviewsByProductLocked(productID)
}

func (s *Store) reviewsByProductLocked(productID string) []models.Review {
	reviews := []models.Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			reviews = append(reviews, r)
		}
	}
	sortReviewsNewestFirst(reviews)
	return reviews
}

// GetAllReviews returns every review, newest first.
func (s *Store) GetAllReviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		reviews = append(reviews, r)
	}
	sortReviewsNewestFirst(reviews)
	return reviews
}

func (s *Store) CreateReview(nr models.NewReview) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	pros, cons := nr.Pros, nr.Cons
	if pros == nil {
		pros = []string{}
	}
	if cons == nil {
		cons = []string{}
	}
	review := models.Review{
		ID:        uuid.NewString(),
		ProductID: nr.ProductID,
		Rating:    nr.Rating,
		Title:     nr.Title,
		Content:   nr.Content,
		Recommend: nr.Recommend,
		Pros:      pros,
		Cons:      cons,
		CreatedAt: time.Now(),
	}
	s.reviews[review.ID] = review
	return review
}

// Support requests

func (s *Store) GetSupportRequest(id string) (models.SupportRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, ok := s.supportRequests[id]
	return request, ok
}

func (s *Store) GetSupportRequestsByProduct(productID string) []models.SupportRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.supportRequestsByProductLocked(productID)
}

func (s *Store) supportRequestsByProductLocked(productID string) []models.SupportRequest {
	requests := []models.SupportRequest{}
	for _, r := range s.supportRequests {
		if r.ProductID == productID {
			requests = append(requests, r)
		}
	}
	sortRequestsNewestFirst(requests)
	return requests
}

// GetAllSupportRequests returns every support request, newest first.
func (s *Store) GetAllSupportRequests() []models.SupportRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	requests := make([]models.SupportRequest, 0, len(s.supportRequests))
	for _, r := range s.supportRequests {
		requests = append(requests, r)
	}
	sortRequestsNewestFirst(requests)
	return requests
}

// CreateSupportRequest records a claim. An explicit status in the payload
// is honored; otherwise the request starts as "sent".
func (s *Store) CreateSupportRequest(nr models.NewSupportRequest) models.SupportRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := nr.Status
	if status == "" {
		status = "sent"
	}
	now := time.Now()
	request := models.SupportRequest{
		ID:               uuid.NewString(),
		ProductID:        nr.ProductID,
		IssueDescription: nr.IssueDescription,
		Category:         nr.Category,
		Severity:         nr.Severity,
		Status:           status,
		EmailSentAt:      now,
		CreatedAt:        now,
	}
	s.supportRequests[request.ID] = request
	return request
}

func (s *Store) UpdateSupportRequest(id string, upd models.SupportRequestUpdate) (models.SupportRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	request, ok := s.supportRequests[id]
	if !ok {
		return models.SupportRequest{}, false
	}
	if upd.IssueDescription != nil {
		request.IssueDescription = *upd.IssueDescription
	}
	if upd.Category != nil {
		request.Category = *upd.Category
	}
	if upd.Severity != nil {
		request.Severity = *upd.Severity
	}
	if upd.Status != nil {
		request.Status = *upd.Status
	}
	s.supportRequests[id] = request
	return request, true
}

// Service providers

func (s *Store) GetServiceProviders(district string) []models.ServiceProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	providers := []models.ServiceProvider{}
	for _, p := range s.providers {
		if district != "" && p.District != district {
			continue
		}
		providers = append(providers, p)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i].Name < providers[j].Name })
	return providers
}

func (s *Store) CreateServiceProvider(np models.NewServiceProvider) models.ServiceProvider {
	s.mu.Lock()
	defer s.mu.Unlock()
	specialties := np.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	provider := models.ServiceProvider{
		ID:          uuid.NewString(),
		Name:        np.Name,
		District:    np.District,
		Phone:       np.Phone,
		Email:       np.Email,
		Website:     np.Website,
		Specialties: specialties,
	}
	s.providers[provider.ID] = provider
	return provider
}

func sortReviewsNewestFirst(reviews []models.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

func sortRequestsNewestFirst(requests []models.SupportRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}
