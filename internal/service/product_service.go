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

type ProductService interface {
	CreateProduct(req *ProductRequest) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *ProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	GetProducts(category model.Category) ([]model.Product, error)
	GetLowStockProducts() ([]model.Product, error)
}

// ProductRequest covers both creation and edit. Quantity here is the
// administrative-correction path; normal stock movement goes through the
// ledger.
type ProductRequest struct {
	Name         string         `json:"name" validate:"required"`
	Category     model.Category `json:"category" validate:"required"`
	Size         model.Size     `json:"size" validate:"required"`
	Description  string         `json:"description"`
	Quantity     *int           `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Price        int64          `json:"price" validate:"required,gt=0"`
	Reference    string         `json:"reference" validate:"required"`
	MinimumStock int            `json:"minimum_stock" validate:"gte=0"`
	IsActive     *bool          `json:"is_active,omitempty"`
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) validate(req *ProductRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.NewValidation("%s", validator.FirstError(errs))
	}
	if !req.Category.IsValid() {
		return apperr.NewValidation("unknown category '%s'", req.Category)
	}
	if !req.Size.IsValid() {
		return apperr.NewValidation("unknown size '%s'", req.Size)
	}
	return nil
}

func (s *productService) CreateProduct(req *ProductRequest) (*model.Product, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	if existing, _ := s.productRepo.FindByReference(req.Reference); existing != nil {
		return nil, apperr.NewValidation("reference '%s' already exists", req.Reference)
	}

	product := &model.Product{
		Name:         req.Name,
		Category:     req.Category,
		Size:         req.Size,
		Description:  req.Description,
		Price:        req.Price,
		Reference:    req.Reference,
		MinimumStock: req.MinimumStock,
		IsActive:     true,
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(id uuid.UUID, req *ProductRequest) (*model.Product, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("product")
		}
		return nil, err
	}

	if req.Reference != product.Reference {
		if existing, _ := s.productRepo.FindByReference(req.Reference); existing != nil {
			return nil, apperr.NewValidation("reference '%s' already exists", req.Reference)
		}
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Size = req.Size
	product.Description = req.Description
	product.Price = req.Price
	product.Reference = req.Reference
	product.MinimumStock = req.MinimumStock
	if req.Quantity != nil {
		// Administrative correction; the ledger is the normal mutation path.
		product.Quantity = *req.Quantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct refuses when ledger history exists; the product can only
// be deactivated then.
func (s *productService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("product")
		}
		return err
	}

	count, err := s.productRepo.CountTransactions(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.NewIntegrity("product has %d transactions; deactivate instead of deleting", count)
	}

	return s.productRepo.Delete(id)
}

func (s *productService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("product")
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProducts(category model.Category) ([]model.Product, error) {
	if category != "" {
		if !category.IsValid() {
			return nil, apperr.NewValidation("unknown category '%s'", category)
		}
		return s.productRepo.FindByCategory(category)
	}
	return s.productRepo.FindAll()
}

func (s *productService) GetLowStockProducts() ([]model.Product, error) {
	return s.productRepo.FindLowStock()
}
