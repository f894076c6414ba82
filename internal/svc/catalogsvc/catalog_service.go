package catalogsvc

import (
	"context"
	"strings"

	"github.com/kopkit/storefront/internal/domain"
	"github.com/kopkit/storefront/internal/infra/logging"
	"github.com/kopkit/storefront/internal/repo/kv"
)

// artworkWidth is the edge length of generated product artwork.
const artworkWidth = 400

// Artwork renders product-card images for products added without one.
type Artwork interface {
	DataURI(ctx context.Context, name, category string, width int) (string, error)
}

// CatalogService owns the product registry, the catalog filter state and the
// per-identity liked sets. Products and filters live in memory only; liked
// sets are first-class state loaded per username from durable storage and
// written through on every toggle.
type CatalogService struct {
	Store   kv.Repository
	Log     logging.Logger
	Artwork Artwork // optional; nil leaves missing images empty

	products []domain.Product
	query    string
	category string
	liked    map[string]map[int]struct{}
}

// NewCatalogService creates a CatalogService seeded with the starter catalog
// and an empty filter (category "All").
func NewCatalogService(store kv.Repository, artwork Artwork) *CatalogService {
	return &CatalogService{
		Store:    store,
		Log:      logging.GetLogger("svc.catalogsvc.catalog_service"),
		Artwork:  artwork,
		products: seedProducts(),
		category: domain.CategoryAll,
		liked:    make(map[string]map[int]struct{}),
	}
}

// Products returns a copy of the product collection.
func (s *CatalogService) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)

	return out
}

// Categories returns the fixed category list, "All" first.
func (s *CatalogService) Categories() []string {
	return seedCategories()
}

// SetQuery sets the free-text filter. An empty query matches every product.
func (s *CatalogService) SetQuery(query string) {
	s.query = query
}

// SetCategory sets the category filter. CategoryAll matches every product.
func (s *CatalogService) SetCategory(category string) {
	s.category = category
}

// FilteredProducts recomputes the filtered view: a product passes when its
// name contains the query (case-insensitive) and its category matches the
// selected one. Both predicates must hold.
func (s *CatalogService) FilteredProducts() []domain.Product {
	query := strings.ToLower(s.query)

	var out []domain.Product

	for _, product := range s.products {
		if !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}

		if s.category != domain.CategoryAll && product.Category != s.category {
			continue
		}

		out = append(out, product)
	}

	return out
}

// AddProduct appends the product under a freshly assigned id: one above the
// highest existing id, or 1 for an empty catalog. A missing image is filled
// with generated artwork when a renderer is wired in. Returns the product as
// stored.
func (s *CatalogService) AddProduct(ctx context.Context, product domain.Product) domain.Product {
	product.ID = s.nextID()

	if product.Image == "" && s.Artwork != nil {
		uri, err := s.Artwork.DataURI(ctx, product.Name, product.Category, artworkWidth)
		if err != nil {
			s.Log.WarnContext(ctx, "render product artwork failed", "error", err)
		} else {
			product.Image = uri
		}
	}

	s.products = append(s.products, product)

	s.Log.DebugContext(ctx, "product added",
		logging.Group("product", "id", product.ID, "name", product.Name))

	return product
}

// RemoveProduct deletes the product with the given id. Absent ids are a no-op.
func (s *CatalogService) RemoveProduct(id int) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)

			return
		}
	}
}

// UpdateProduct replaces the stored product with the same id wholesale; this
// is a full replacement, not a merge. Absent ids are a no-op.
func (s *CatalogService) UpdateProduct(updated domain.Product) {
	for i := range s.products {
		if s.products[i].ID == updated.ID {
			s.products[i] = updated

			return
		}
	}
}

func (s *CatalogService) nextID() int {
	maxID := 0

	for _, product := range s.products {
		if product.ID > maxID {
			maxID = product.ID
		}
	}

	return maxID + 1
}
