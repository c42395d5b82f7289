package service

import (
	"context"
	"errors"

	"biztrack/internal/dto"
	"biztrack/internal/model"
	"biztrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorService interface {
	Create(ctx context.Context, req dto.CreateVendorRequest) (*dto.VendorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.VendorResponse, error)
	List(ctx context.Context) ([]dto.VendorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vendorService struct {
	repo repository.VendorRepository
}

func NewVendorService(repo repository.VendorRepository) VendorService {
	return &vendorService{repo: repo}
}

func (s *vendorService) Create(ctx context.Context, req dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	v := &model.Vendor{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		PerformanceScore: 100,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := vendorToResponse(v)
	return &resp, nil
}

func (s *vendorService) Get(ctx context.Context, id uuid.UUID) (*dto.VendorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := vendorToResponse(v)
	return &resp, nil
}

func (s *vendorService) List(ctx context.Context) ([]dto.VendorResponse, error) {
	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(vendors))
	for i := range vendors {
		out = append(out, vendorToResponse(&vendors[i]))
	}
	return out, nil
}

func (s *vendorService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Email != nil {
		v.Email = req.Email
	}
	if req.Phone != nil {
		v.Phone = req.Phone
	}
	if req.Address != nil {
		v.Address = req.Address
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := vendorToResponse(v)
	return &resp, nil
}

func (s *vendorService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func vendorToResponse(v *model.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:               v.ID.String(),
		Name:             v.Name,
		Email:            v.Email,
		Phone:            v.Phone,
		Address:          v.Address,
		TotalDue:         v.TotalDue,
		PerformanceScore: v.PerformanceScore,
		CreatedAt:        v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
