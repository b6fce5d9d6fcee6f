package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuminLynx/ProductCareHub/models"
	"github.com/LuminLynx/ProductCareHub/warranty"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedBrandID(t *testing.T, s *Store) string {
	t.Helper()
	brands := s.GetAllBrands()
	require.NotEmpty(t, brands)
	return brands[0].ID
}

func TestSeedBrands(t *testing.T) {
	s := New()
	brands := s.GetAllBrands()
	require.Len(t, brands, 10)
	// Sorted by name.
	assert.Equal(t, "Apple", brands[0].Name)
	assert.Equal(t, "Xiaomi", brands[9].Name)
	for _, b := range brands {
		assert.NotEmpty(t, b.ID)
		assert.NotEmpty(t, b.SupportEmail)
	}
}

func TestCreateBrand(t *testing.T) {
	s := New()
	brand := s.CreateBrand(models.NewBrand{
		Name:         "Miele",
		SupportEmail: "apoio@miele.pt",
		Category:     "Eletrodomésticos",
	})
	assert.NotEmpty(t, brand.ID)

	stored, ok := s.GetBrand(brand.ID)
	require.True(t, ok)
	assert.Equal(t, brand, stored)

	// Duplicate names are allowed.
	dup := s.CreateBrand(models.NewBrand{Name: "Miele", SupportEmail: "x@miele.pt", Category: "Outro"})
	assert.NotEqual(t, brand.ID, dup.ID)
}

func TestCreateProductDerivesWarrantyExpiration(t *testing.T) {
	s := New()
	product := s.CreateProduct(models.NewProduct{
		BrandID:      seedBrandID(t, s),
		Name:         "TV X",
		Model:        "M1",
		Category:     "Televisão e Áudio",
		PurchaseDate: date(2024, time.January, 15),
	})

	assert.Equal(t, date(2027, time.January, 15), product.WarrantyExpiration)
	// Absent photo list is normalized, never nil.
	assert.NotNil(t, product.PhotoURLs)
	assert.Empty(t, product.PhotoURLs)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	s := New()
	product := s.CreateProduct(models.NewProduct{
		BrandID:      seedBrandID(t, s),
		Name:         "TV X",
		Model:        "M1",
		Category:     "TV",
		PurchaseDate: date(2024, time.January, 15),
	})

	name := "TV X Pro"
	updated, ok := s.UpdateProduct(product.ID, models.ProductUpdate{Name: &name})
	require.True(t, ok)
	assert.Equal(t, "TV X Pro", updated.Name)
	assert.Equal(t, product.Model, updated.Model)

	// Editing the purchase date does not recompute the expiration; the
	// warranty term is locked at registration.
	newPurchase := date(2025, time.May, 1)
	updated, ok = s.UpdateProduct(product.ID, models.ProductUpdate{PurchaseDate: &newPurchase})
	require.True(t, ok)
	assert.Equal(t, newPurchase, updated.PurchaseDate)
	assert.Equal(t, date(2027, time.January, 15), updated.WarrantyExpiration)

	_, ok = s.UpdateProduct("missing", models.ProductUpdate{Name: &name})
	assert.False(t, ok)
}

func TestDanglingBrandDropsFromJoinedViews(t *testing.T) {
	s := New()
	product := s.CreateProduct(models.NewProduct{
		BrandID:      "no-such-brand",
		Name:         "Orphan",
		Model:        "O1",
		Category:     "Outro",
		PurchaseDate: date(2024, time.January, 1),
	})

	// Individually resolvable...
	_, ok := s.GetProduct(product.ID)
	assert.True(t, ok)

	// ...but invisible in every brand-joined context.
	_, ok = s.GetProductWithBrand(product.ID)
	assert.False(t, ok)
	_, ok = s.GetProductWithDetails(product.ID)
	assert.False(t, ok)
	for _, p := range s.GetAllProducts() {
		assert.NotEqual(t, product.ID, p.ID)
	}
}

func TestGetAllProductsSortedByPurchaseDateDesc(t *testing.T) {
	s := New()
	brandID := seedBrandID(t, s)
	old := s.CreateProduct(models.NewProduct{BrandID: brandID, Name: "Old", Model: "A", Category: "x", PurchaseDate: date(2022, time.March, 1)})
	newest := s.CreateProduct(models.NewProduct{BrandID: brandID, Name: "New", Model: "B", Category: "x", PurchaseDate: date(2025, time.March, 1)})
	mid := s.CreateProduct(models.NewProduct{BrandID: brandID, Name: "Mid", Model: "C", Category: "x", PurchaseDate: date(2023, time.March, 1)})

	products := s.GetAllProducts()
	require.Len(t, products, 3)
	assert.Equal(t, newest.ID, products[0].ID)
	assert.Equal(t, mid.ID, products[1].ID)
	assert.Equal(t, old.ID, products[2].ID)
}

func TestDeleteProductCascades(t *testing.T) {
	s := New()
	brandID := seedBrandID(t, s)
	product := s.CreateProduct(models.NewProduct{BrandID: brandID, Name: "TV", Model: "M", Category: "x", PurchaseDate: date(2024, time.January, 1)})
	other := s.CreateProduct(models.NewProduct{BrandID: brandID, Name: "Other", Model: "N", Category: "x", PurchaseDate: date(2024, time.January, 2)})

	review := s.CreateReview(models.NewReview{ProductID: product.ID, Rating: 4})
	keptReview := s.CreateReview(models.NewReview{ProductID: other.ID, Rating: 5})
	request := s.CreateSupportRequest(models.NewSupportRequest{ProductID: product.ID, IssueDescription: "broken", Category: "Screen", Severity: "high"})

	require.True(t, s.DeleteProduct(product.ID))

	_, ok := s.GetProduct(product.ID)
	assert.False(t, ok)
	_, ok = s.GetReview(review.ID)
	assert.False(t, ok)
	_, ok = s.GetSupportRequest(request.ID)
	assert.False(t, ok)

	// Unrelated records survive.
	_, ok = s.GetReview(keptReview.ID)
	assert.True(t, ok)

	assert.False(t, s.DeleteProduct(product.ID))
}

func TestProductWithDetailsEndToEnd(t *testing.T) {
	s := New()
	brand := s.CreateBrand(models.NewBrand{Name: "Acme", SupportEmail: "a@b.com", Category: "Informática"})
	product := s.CreateProduct(models.NewProduct{
		BrandID:      brand.ID,
		Name:         "TV X",
		Model:        "M1",
		Category:     "TV",
		PurchaseDate: date(2024, time.January, 15),
	})
	assert.Equal(t, date(2027, time.January, 15), product.WarrantyExpiration)

	s.CreateReview(models.NewReview{ProductID: product.ID, Rating: 4})
	time.Sleep(time.Millisecond)
	second := s.CreateReview(models.NewReview{ProductID: product.ID, Rating: 2})

	details, ok := s.GetProductWithDetails(product.ID)
	require.True(t, ok)
	assert.Equal(t, brand, details.Brand)
	require.Len(t, details.Reviews, 2)
	// Newest first.
	assert.Equal(t, second.ID, details.Reviews[0].ID)
	assert.Equal(t, float64(3), warranty.AverageRating(details.Reviews))
}

func TestCreateReviewNormalizesProsCons(t *testing.T) {
	s := New()
	review := s.CreateReview(models.NewReview{ProductID: "p", Rating: 5})
	assert.NotNil(t, review.Pros)
	assert.NotNil(t, review.Cons)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestSupportRequestStatus(t *testing.T) {
	s := New()

	defaulted := s.CreateSupportRequest(models.NewSupportRequest{
		ProductID: "p", IssueDescription: "d", Category: "c", Severity: "low",
	})
	assert.Equal(t, "sent", defaulted.Status)
	assert.False(t, defaulted.EmailSentAt.IsZero())

	// An explicit status is honored instead of being overwritten.
	explicit := s.CreateSupportRequest(models.NewSupportRequest{
		ProductID: "p", IssueDescription: "d", Category: "c", Severity: "low", Status: "resolved",
	})
	assert.Equal(t, "resolved", explicit.Status)

	resolved := "resolved"
	updated, ok := s.UpdateSupportRequest(defaulted.ID, models.SupportRequestUpdate{Status: &resolved})
	require.True(t, ok)
	assert.Equal(t, "resolved", updated.Status)
	assert.Equal(t, defaulted.IssueDescription, updated.IssueDescription)

	_, ok = s.UpdateSupportRequest("missing", models.SupportRequestUpdate{Status: &resolved})
	assert.False(t, ok)
}

func TestSupportRequestsByProductNewestFirst(t *testing.T) {
	s := New()
	first := s.CreateSupportRequest(models.NewSupportRequest{ProductID: "p", IssueDescription: "a", Category: "c", Severity: "low"})
	time.Sleep(time.Millisecond)
	second := s.CreateSupportRequest(models.NewSupportRequest{ProductID: "p", IssueDescription: "b", Category: "c", Severity: "low"})
	s.CreateSupportRequest(models.NewSupportRequest{ProductID: "other", IssueDescription: "c", Category: "c", Severity: "low"})

	requests := s.GetSupportRequestsByProduct("p")
	require.Len(t, requests, 2)
	assert.Equal(t, second.ID, requests[0].ID)
	assert.Equal(t, first.ID, requests[1].ID)
}

func TestSearch(t *testing.T) {
	s := New()
	brand := s.CreateBrand(models.NewBrand{Name: "Acme", SupportEmail: "a@b.com", Category: "x"})
	s.CreateProduct(models.NewProduct{BrandID: brand.ID, Name: "Máquina de Lavar", Model: "WX100", Category: "x", PurchaseDate: date(2024, time.January, 1)})

	assert.Len(t, s.SearchProducts("máquina"), 1)
	assert.Len(t, s.SearchProducts("wx1"), 1)
	// Brand name matches too.
	assert.Len(t, s.SearchProducts("acme"), 1)
	assert.Empty(t, s.SearchProducts("torradeira"))

	assert.Len(t, s.SearchBrands("acm"), 1)
	assert.Len(t, s.SearchBrands("SAMS"), 1)
}

func TestServiceProviders(t *testing.T) {
	s := New()
	all := s.GetServiceProviders("")
	require.NotEmpty(t, all)

	lisbon := s.GetServiceProviders("Lisboa")
	for _, p := range lisbon {
		assert.Equal(t, "Lisboa", p.District)
	}
	assert.Less(t, len(lisbon), len(all))

	created := s.CreateServiceProvider(models.NewServiceProvider{
		Name: "Nova Oficina", District: "Lisboa", Phone: "+351-210-000-000", Email: "n@o.pt",
	})
	assert.NotNil(t, created.Specialties)
	assert.Len(t, s.GetServiceProviders("Lisboa"), len(lisbon)+1)
}
