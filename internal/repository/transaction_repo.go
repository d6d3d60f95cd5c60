package repository

import (
	"time"

	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows ledger listings. Nil/zero fields are skipped.
type TransactionFilter struct {
	ProductID *uuid.UUID
	UserID    *uuid.UUID
	Type      model.TransactionType
	DateFrom  *time.Time
	DateTo    *time.Time
}

// ProductTotals carries the per-product lifetime aggregates.
type ProductTotals struct {
	TotalEntries int64 `json:"total_entries"`
	TotalExits   int64 `json:"total_exits"`
	TotalRevenue int64 `json:"total_revenue"` // SUM(unit_price * quantity) over exits
}

// DailyMovement is one grouped row of per-day entry/exit sums. Days with
// no activity produce no row; the stats service fills the gaps.
type DailyMovement struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Entries int    `json:"entries"`
	Exits   int    `json:"exits"`
	Revenue int64  `json:"revenue"` // exit line totals for the day
}

// CategoryCount is one row of the category distribution.
type CategoryCount struct {
	Category      model.Category `json:"category"`
	Count         int64          `json:"count"`
	TotalQuantity int64          `json:"total_quantity"`
}

type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.Transaction) error
	FindAll(filter TransactionFilter) ([]model.Transaction, error)
	FindByID(id uint) (*model.Transaction, error)
	FindLatest(limit int) ([]model.Transaction, error)
	FindSince(since time.Time, limit int) ([]model.Transaction, error)
	Count() (int64, error)
	ProductTotals(productID uuid.UUID) (*ProductTotals, error)
	DailyMovement(productID *uuid.UUID, start, end time.Time) ([]DailyMovement, error)
	CategoryDistribution() ([]CategoryCount, error)
	TotalExitRevenue() (int64, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

// Create inserts the ledger row inside the caller's transaction, paired
// with the quantity update performed by the ledger service.
func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) FindAll(filter TransactionFilter) ([]model.Transaction, error) {
	query := r.db.Preload("Product").Preload("User")
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	var transactions []model.Transaction
	err := query.Order("created_at DESC, id ASC").Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindByID(id uint) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").Preload("User").First(&transaction, id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// FindLatest orders by timestamp descending; timestamp ties resolve by
// insertion order (ascending id).
func (r *transactionRepo) FindLatest(limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Product").Preload("User").
		Order("created_at DESC, id ASC").Limit(limit).Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) FindSince(since time.Time, limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := r.db.Preload("Product").Preload("User").
		Where("created_at >= ?", since).
		Order("created_at DESC, id ASC").Limit(limit).Find(&transactions).Error
	return transactions, err
}

func (r *transactionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).Count(&count).Error
	return count, err
}

func (r *transactionRepo) ProductTotals(productID uuid.UUID) (*ProductTotals, error) {
	var totals ProductTotals
	err := r.db.Model(&model.Transaction{}).
		Select(`
			COALESCE(SUM(CASE WHEN type = 'entry' THEN quantity ELSE 0 END), 0) as total_entries,
			COALESCE(SUM(CASE WHEN type = 'exit' THEN quantity ELSE 0 END), 0) as total_exits,
			COALESCE(SUM(CASE WHEN type = 'exit' THEN unit_price * quantity ELSE 0 END), 0) as total_revenue
		`).
		Where("product_id = ?", productID).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// DailyMovement aggregates entry/exit quantities per day. Pass a nil
// productID for the whole inventory.
func (r *transactionRepo) DailyMovement(productID *uuid.UUID, start, end time.Time) ([]DailyMovement, error) {
	query := r.db.Model(&model.Transaction{}).
		Select(`
			TO_CHAR(created_at, 'YYYY-MM-DD') as date,
			COALESCE(SUM(CASE WHEN type = 'entry' THEN quantity ELSE 0 END), 0) as entries,
			COALESCE(SUM(CASE WHEN type = 'exit' THEN quantity ELSE 0 END), 0) as exits,
			COALESCE(SUM(CASE WHEN type = 'exit' THEN unit_price * quantity ELSE 0 END), 0) as revenue
		`).
		Where("created_at BETWEEN ? AND ?", start, end)
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}

	rows, err := query.Group("TO_CHAR(created_at, 'YYYY-MM-DD')").Order("date ASC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []DailyMovement
	for rows.Next() {
		var data DailyMovement
		if err := rows.Scan(&data.Date, &data.Entries, &data.Exits, &data.Revenue); err != nil {
			return nil, err
		}
		results = append(results, data)
	}
	return results, rows.Err()
}

func (r *transactionRepo) CategoryDistribution() ([]CategoryCount, error) {
	var results []CategoryCount
	err := r.db.Model(&model.Product{}).
		Select(`
			category,
			COUNT(id) as count,
			COALESCE(SUM(quantity), 0) as total_quantity
		`).
		Group("category").
		Order("count DESC").
		Scan(&results).Error
	return results, err
}

func (r *transactionRepo) TotalExitRevenue() (int64, error) {
	var revenue int64
	err := r.db.Model(&model.Transaction{}).
		Where("type = ?", model.TxExit).
		Select("COALESCE(SUM(unit_price * quantity), 0)").
		Scan(&revenue).Error
	return revenue, err
}
