package repository

import (
	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierFilter narrows listing queries. Zero values mean "no filter".
type SupplierFilter struct {
	Type   model.SupplierType
	Search string // matches name, contact person or email
}

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(filter SupplierFilter) ([]model.Supplier, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	FindByName(name string) (*model.Supplier, error)
	FindRecent(limit int) ([]model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID) error
	CountByType(t model.SupplierType) (int64, error)
	Count() (int64, error)
	CountTransactions(name string) (int64, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(filter SupplierFilter) ([]model.Supplier, error) {
	query := r.db.Model(&model.Supplier{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR contact_person ILIKE ? OR email ILIKE ?", like, like, like)
	}
	var suppliers []model.Supplier
	err := query.Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) FindByName(name string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) FindRecent(limit int) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order("created_at DESC").Limit(limit).Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}

func (r *supplierRepo) CountByType(t model.SupplierType) (int64, error) {
	var count int64
	err := r.db.Model(&model.Supplier{}).Where("type = ?", t).Count(&count).Error
	return count, err
}

func (r *supplierRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Supplier{}).Count(&count).Error
	return count, err
}

// CountTransactions counts ledger rows referencing the supplier by name.
// The name string is the only link the ledger keeps, so deletion checks
// go through it.
func (r *supplierRepo) CountTransactions(name string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).Where("supplier = ?", name).Count(&count).Error
	return count, err
}
