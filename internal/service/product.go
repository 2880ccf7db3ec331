package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tokoku/go-storefront-api/internal/dto"
	"github.com/tokoku/go-storefront-api/internal/model"
	"github.com/tokoku/go-storefront-api/internal/store"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	store *store.Store
}

func NewProductService(st *store.Store) *ProductService {
	return &ProductService{store: st}
}

// List returns every product whose name contains the search term,
// case-insensitively. An empty term matches everything. No pagination.
func (s *ProductService) List(ctx context.Context, search string) []model.Product {
	doc := s.store.Load()
	needle := strings.ToLower(search)
	filtered := make([]model.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s *ProductService) GetByID(ctx context.Context, id model.ID) (*model.Product, error) {
	doc := s.store.Load()
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			return &doc.Products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// Create prepends the new product so listings come back newest-first.
func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	category := req.Category
	if category == "" {
		category = model.DefaultCategory
	}
	product := model.Product{
		ID:       model.NewID(),
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		SKU:      req.SKU,
		Category: category,
		ImageURL: req.ImageURL,
		Sold:     0,
	}
	err := s.store.Update(func(doc *model.Document) error {
		doc.Products = append([]model.Product{product}, doc.Products...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update shallow-merges the set fields onto the matched product. Id and the
// sold counter are not patchable.
func (s *ProductService) Update(ctx context.Context, id model.ID, req dto.UpdateProductRequest) (*model.Product, error) {
	var updated model.Product
	err := s.store.Update(func(doc *model.Document) error {
		for i := range doc.Products {
			p := &doc.Products[i]
			if p.ID != id {
				continue
			}
			if req.Name != nil {
				p.Name = *req.Name
			}
			if req.Price != nil {
				p.Price = *req.Price
			}
			if req.Stock != nil {
				p.Stock = *req.Stock
			}
			if req.SKU != nil {
				p.SKU = *req.SKU
			}
			if req.Category != nil {
				p.Category = *req.Category
			}
			if req.ImageURL != nil {
				p.ImageURL = *req.ImageURL
			}
			updated = *p
			return nil
		}
		return ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the matched product. Deleting an id that does not exist is
// not an error; the caller gets the same result either way. Orders keep
// their item snapshots, so nothing cascades.
func (s *ProductService) Delete(ctx context.Context, id model.ID) error {
	return s.store.Update(func(doc *model.Document) error {
		kept := doc.Products[:0]
		for _, p := range doc.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		doc.Products = kept
		return nil
	})
}
