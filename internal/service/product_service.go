package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"biztrack/internal/dto"
	"biztrack/internal/model"
	"biztrack/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Barcode lookups are the hot path at the register, so hits are cached in
// Redis for a short TTL. Catalog mutations invalidate the cached entry;
// order-path stock decrements rely on the TTL, so a cached quantity can lag
// by up to barcodeCacheTTL.
const barcodeCacheTTL = 60 * time.Second

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	ListLowStock(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
}

type productService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, rdb: rdb}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Barcode:     req.Barcode,
		Price:       req.Price,
		Cost:        req.Cost,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Description: req.Description,
		Active:      true,
	}
	if req.LowStockThreshold != nil {
		p.LowStockThreshold = *req.LowStockThreshold
	} else {
		p.LowStockThreshold = 10
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	cacheKey := "product:barcode:" + barcode

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.ProductResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := productToResponse(p)

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, barcodeCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("barcode", barcode).Msg("barcode cache write failed")
			}
		}
	}
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) ListLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}
	return out, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	oldBarcode := p.Barcode

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.SKU != nil {
		p.SKU = req.SKU
	}
	if req.Barcode != nil {
		p.Barcode = req.Barcode
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}
	if req.LowStockThreshold != nil {
		p.LowStockThreshold = *req.LowStockThreshold
	}
	if req.Category != nil {
		p.Category = req.Category
	}
	if req.Description != nil {
		p.Description = req.Description
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidateBarcode(ctx, oldBarcode)
	s.invalidateBarcode(ctx, p.Barcode)

	resp := productToResponse(p)
	return &resp, nil
}

// SetQuantity is the manual stock adjustment: an absolute set, not a delta.
// Sales decrement through the order path; this endpoint is for recounts.
func (s *productService) SetQuantity(ctx context.Context, id uuid.UUID, quantity int) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.repo.SetQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}
	p.Quantity = quantity
	s.invalidateBarcode(ctx, p.Barcode)
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidateBarcode(ctx, p.Barcode)
	return nil
}

// Reactivate undoes a soft delete, bringing the product back into
// listings and the low-stock scan.
func (s *productService) Reactivate(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.repo.Reactivate(ctx, id); err != nil {
		return nil, err
	}
	p.Active = true
	s.invalidateBarcode(ctx, p.Barcode)
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) invalidateBarcode(ctx context.Context, barcode *string) {
	if s.rdb == nil || barcode == nil || *barcode == "" {
		return
	}
	if err := s.rdb.Del(ctx, "product:barcode:"+*barcode).Err(); err != nil {
		log.Warn().Err(err).Msg("barcode cache invalidation failed")
	}
}

func productToResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		SKU:               p.SKU,
		Barcode:           p.Barcode,
		Price:             p.Price,
		Cost:              p.Cost,
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		Category:          p.Category,
		Description:       p.Description,
		Active:            p.Active,
	}
}
