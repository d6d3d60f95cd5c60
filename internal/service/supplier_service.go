package service

import (
	"errors"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/pkg/apperr"
	"go-inventory-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierStats summarizes the supplier directory for the dashboard.
type SupplierStats struct {
	TotalSuppliers     int64            `json:"total_suppliers"`
	NationalCount      int64            `json:"national_count"`
	InternationalCount int64            `json:"international_count"`
	RecentSuppliers    []model.Supplier `json:"recent_suppliers"`
}

type SupplierService interface {
	CreateSupplier(req *SupplierRequest) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *SupplierRequest) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID) error
	GetSupplier(id uuid.UUID) (*model.Supplier, error)
	GetSuppliers(filter repository.SupplierFilter) ([]model.Supplier, error)
	GetStats() (*SupplierStats, error)
}

type SupplierRequest struct {
	Name          string             `json:"name" validate:"required"`
	Type          model.SupplierType `json:"type" validate:"required"`
	ContactPerson string             `json:"contact_person"`
	Email         string             `json:"email" validate:"omitempty,email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	IsActive      *bool              `json:"is_active,omitempty"`
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) validate(req *SupplierRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation("%s", validator.FirstError(errs))
	}
	if !req.Type.IsValid() {
		return apperr.NewValidation("supplier type must be 'national' or 'international'")
	}
	return nil
}

func (s *supplierService) CreateSupplier(req *SupplierRequest) (*model.Supplier, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	supplier := &model.Supplier{
		Name:          req.Name,
		Type:          req.Type,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		IsActive:      true,
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) UpdateSupplier(id uuid.UUID, req *SupplierRequest) (*model.Supplier, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("supplier")
		}
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Type = req.Type
	supplier.ContactPerson = req.ContactPerson
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	supplier.Address = req.Address
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier refuses when entry transactions reference the supplier by
// name; deactivate instead.
func (s *supplierService) DeleteSupplier(id uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("supplier")
		}
		return err
	}

	count, err := s.supplierRepo.CountTransactions(supplier.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.NewIntegrity("supplier has %d transactions; deactivate instead of deleting", count)
	}

	return s.supplierRepo.Delete(id)
}

func (s *supplierService) GetSupplier(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("supplier")
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetSuppliers(filter repository.SupplierFilter) ([]model.Supplier, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, apperr.NewValidation("supplier type must be 'national' or 'international'")
	}
	return s.supplierRepo.FindAll(filter)
}

func (s *supplierService) GetStats() (*SupplierStats, error) {
	stats := &SupplierStats{}

	var err error
	if stats.TotalSuppliers, err = s.supplierRepo.Count(); err != nil {
		return nil, err
	}
	if stats.NationalCount, err = s.supplierRepo.CountByType(model.SupplierNational); err != nil {
		return nil, err
	}
	if stats.InternationalCount, err = s.supplierRepo.CountByType(model.SupplierInternational); err != nil {
		return nil, err
	}
	if stats.RecentSuppliers, err = s.supplierRepo.FindRecent(5); err != nil {
		return nil, err
	}

	return stats, nil
}
