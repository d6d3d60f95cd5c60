package service

import (
	"errors"
	"time"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ProductStats are the lifetime figures of one product. TotalRevenue sums
// unit_price x quantity over exit transactions (line totals).
type ProductStats struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	TotalEntries int64     `json:"total_entries"`
	TotalExits   int64     `json:"total_exits"`
	CurrentStock int       `json:"current_stock"`
	TotalRevenue int64     `json:"total_revenue"`
}

// DailyBucket is one day of a product series, keyed by UTC calendar date
// to match the zone the grouped rows are rendered in. StockLevel is the
// current stock minus the net movement of later days, a backward-adjusted
// figure rather than a point-in-time reconstruction.
type DailyBucket struct {
	Date       string `json:"date"`
	Entries    int    `json:"entries"`
	Exits      int    `json:"exits"`
	StockLevel int    `json:"stock_level"`
}

// OverviewBucket is one day of the whole-inventory series.
type OverviewBucket struct {
	Date    string `json:"date"`
	Entries int    `json:"entries"`
	Exits   int    `json:"exits"`
	Revenue int64  `json:"revenue"`
}

// ProductOverview is the current-state snapshot row of one product.
type ProductOverview struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Reference    string    `json:"reference"`
	Quantity     int       `json:"quantity"`
	MinimumStock int       `json:"minimum_stock"`
	IsLowStock   bool      `json:"is_low_stock"`
}

// DashboardSummary bundles the landing-page counters.
type DashboardSummary struct {
	TotalProducts      int64                       `json:"total_products"`
	TotalTransactions  int64                       `json:"total_transactions"`
	LowStockCount      int64                       `json:"low_stock_count"`
	TotalRevenue       int64                       `json:"total_revenue"`
	RecentTransactions []model.TransactionResponse `json:"recent_transactions"`
}

// StatsService derives read-only statistics from the ledger. It never
// mutates state.
type StatsService interface {
	ProductStats(productID uuid.UUID) (*ProductStats, error)
	DailySeries(productID uuid.UUID, windowDays int) ([]DailyBucket, error)
	OverviewSeries(windowDays int) ([]OverviewBucket, error)
	InventoryOverview() ([]ProductOverview, error)
	CategoryDistribution() ([]repository.CategoryCount, error)
	DashboardSummary() (*DashboardSummary, error)
}

type statsService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
}

func NewStatsService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository) StatsService {
	return &statsService{productRepo: pRepo, transactionRepo: tRepo}
}

func (s *statsService) ProductStats(productID uuid.UUID) (*ProductStats, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("product")
		}
		return nil, err
	}

	totals, err := s.transactionRepo.ProductTotals(productID)
	if err != nil {
		return nil, err
	}

	return &ProductStats{
		ProductID:    product.ID,
		ProductName:  product.Name,
		TotalEntries: totals.TotalEntries,
		TotalExits:   totals.TotalExits,
		CurrentStock: product.Quantity,
		TotalRevenue: totals.TotalRevenue,
	}, nil
}

func (s *statsService) DailySeries(productID uuid.UUID, windowDays int) ([]DailyBucket, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("product")
		}
		return nil, err
	}

	start, end := seriesWindow(windowDays, time.Now())

	movements, err := s.transactionRepo.DailyMovement(&productID, start, end)
	if err != nil {
		return nil, err
	}

	return buildDailySeries(movements, product.Quantity, windowDays, end), nil
}

func (s *statsService) OverviewSeries(windowDays int) ([]OverviewBucket, error) {
	start, end := seriesWindow(windowDays, time.Now())

	movements, err := s.transactionRepo.DailyMovement(nil, start, end)
	if err != nil {
		return nil, err
	}

	return buildOverviewSeries(movements, windowDays, end), nil
}

func (s *statsService) InventoryOverview() ([]ProductOverview, error) {
	products, err := s.productRepo.FindActive()
	if err != nil {
		return nil, err
	}

	overview := make([]ProductOverview, len(products))
	for i := range products {
		p := &products[i]
		overview[i] = ProductOverview{
			ID:           p.ID,
			Name:         p.Name,
			Reference:    p.Reference,
			Quantity:     p.Quantity,
			MinimumStock: p.MinimumStock,
			IsLowStock:   p.IsLowStock(),
		}
	}
	return overview, nil
}

func (s *statsService) CategoryDistribution() ([]repository.CategoryCount, error) {
	return s.transactionRepo.CategoryDistribution()
}

func (s *statsService) DashboardSummary() (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.TotalProducts, err = s.productRepo.CountActive(); err != nil {
		return nil, err
	}
	if summary.TotalTransactions, err = s.transactionRepo.Count(); err != nil {
		return nil, err
	}
	if summary.LowStockCount, err = s.productRepo.CountLowStock(); err != nil {
		return nil, err
	}
	if summary.TotalRevenue, err = s.transactionRepo.TotalExitRevenue(); err != nil {
		return nil, err
	}

	recent, err := s.transactionRepo.FindLatest(5)
	if err != nil {
		return nil, err
	}
	summary.RecentTransactions = make([]model.TransactionResponse, len(recent))
	for i := range recent {
		summary.RecentTransactions[i] = recent[i].ToResponse()
	}

	return summary, nil
}

// buildDailySeries expands grouped movement rows into windowDays+1
// contiguous buckets ending today, zero-filling silent days. The stock
// level of a day is the current stock minus the net movement of every
// later day in the window.
func buildDailySeries(movements []repository.DailyMovement, currentStock, windowDays int, now time.Time) []DailyBucket {
	byDate := make(map[string]repository.DailyMovement, len(movements))
	for _, m := range movements {
		byDate[m.Date] = m
	}

	n := windowDays + 1
	buckets := make([]DailyBucket, n)
	for i := 0; i < n; i++ {
		date := now.AddDate(0, 0, i-windowDays).Format(dateLayout)
		m := byDate[date]
		buckets[i] = DailyBucket{Date: date, Entries: m.Entries, Exits: m.Exits}
	}

	// Walk backwards from today, peeling off each later day's net change.
	level := currentStock
	for i := n - 1; i >= 0; i-- {
		buckets[i].StockLevel = level
		level -= buckets[i].Entries - buckets[i].Exits
	}
	return buckets
}

// buildOverviewSeries zero-fills the whole-inventory series the same way.
func buildOverviewSeries(movements []repository.DailyMovement, windowDays int, now time.Time) []OverviewBucket {
	byDate := make(map[string]repository.DailyMovement, len(movements))
	for _, m := range movements {
		byDate[m.Date] = m
	}

	n := windowDays + 1
	buckets := make([]OverviewBucket, n)
	for i := 0; i < n; i++ {
		date := now.AddDate(0, 0, i-windowDays).Format(dateLayout)
		m := byDate[date]
		buckets[i] = OverviewBucket{Date: date, Entries: m.Entries, Exits: m.Exits, Revenue: m.Revenue}
	}
	return buckets
}

// seriesWindow returns the [start, end] bounds of a chart window in UTC.
// The grouped rows key days by the session time zone (pinned to UTC in the
// DSN), so the bucket dates must be computed in the same zone or activity
// near midnight lands in the wrong bucket.
func seriesWindow(windowDays int, now time.Time) (time.Time, time.Time) {
	end := now.UTC()
	return dayStart(end.AddDate(0, 0, -windowDays)), end
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
