package repository

import (
	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindActive() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByReference(reference string) (*model.Product, error)
	FindByCategory(category model.Category) ([]model.Product, error)
	FindLowStock() ([]model.Product, error)
	CountActive() (int64, error)
	CountLowStock() (int64, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	LockByID(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error
	CountTransactions(productID uuid.UUID) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindActive() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByReference(reference string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "reference = ?", reference).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByCategory(category model.Category) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category = ?", category).Order("name ASC").Find(&products).Error
	return products, err
}

// FindLowStock returns active products sitting at or below their own
// minimum threshold.
func (r *productRepo) FindLowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("is_active = ? AND quantity <= minimum_stock", true).
		Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *productRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("is_active = ? AND quantity <= minimum_stock", true).Count(&count).Error
	return count, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// LockByID reads the product row FOR UPDATE inside the given transaction,
// so concurrent ledger writes serialize on the row.
func (r *productRepo) LockByID(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateQuantity runs inside the caller's transaction so the quantity
// write and the ledger insert commit or roll back together.
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", newQuantity).Error
}

// CountTransactions guards deletion: products owning ledger rows are only
// ever deactivated.
func (r *productRepo) CountTransactions(productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}
