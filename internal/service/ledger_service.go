package service

import (
	"errors"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/ws"
	"go-inventory-api/pkg/apperr"
	"go-inventory-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies the authenticated user recording a transaction.
type Actor struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// CreateTransactionRequest is the ledger input. UnitPrice is optional;
// when zero the product's current price is snapshotted.
type CreateTransactionRequest struct {
	ProductID uuid.UUID             `json:"product_id" validate:"uuid_required"`
	Type      model.TransactionType `json:"type" validate:"required,oneof=entry exit"`
	Quantity  int                   `json:"quantity" validate:"required,gt=0"`
	UnitPrice int64                 `json:"unit_price" validate:"gte=0"`
	Supplier  string                `json:"supplier"`
}

// LowStockWarning annotates a successful exit that left the product at or
// below its minimum threshold. It never blocks the transaction.
type LowStockWarning struct {
	Warning      string `json:"warning"`
	CurrentStock int    `json:"current_stock"` // before the movement
	StockAfter   int    `json:"stock_after"`
	MinimumStock int    `json:"minimum_stock"`
}

type LedgerService interface {
	ApplyTransaction(req *CreateTransactionRequest, actor Actor) (*model.Transaction, []LowStockWarning, error)
}

type ledgerService struct {
	productRepo     repository.ProductRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewLedgerService(pRepo repository.ProductRepository, tRepo repository.TransactionRepository, db *gorm.DB, hub *ws.Hub) LedgerService {
	return &ledgerService{
		productRepo:     pRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

// ApplyTransaction performs the single unit of work of a stock movement:
// lock the product row, validate the movement against current stock,
// write the new quantity and the ledger row, commit both together. The
// timestamp comes from the insert, never from the client.
func (s *ledgerService) ApplyTransaction(req *CreateTransactionRequest, actor Actor) (*model.Transaction, []LowStockWarning, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, nil, apperr.NewValidation("%s", validator.FirstError(errs))
	}
	if req.Type == model.TxExit && req.Supplier != "" {
		return nil, nil, apperr.NewValidation("supplier is only recorded on entry transactions")
	}

	var created *model.Transaction
	var warnings []LowStockWarning

	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.LockByID(tx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFound("product")
			}
			return err
		}

		newQuantity, err := applyStockChange(product.Quantity, req.Type, req.Quantity)
		if err != nil {
			return err
		}

		if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity); err != nil {
			return err
		}

		unitPrice := req.UnitPrice
		if unitPrice == 0 {
			unitPrice = product.Price
		}

		record := &model.Transaction{
			Type:      req.Type,
			ProductID: product.ID,
			Quantity:  req.Quantity,
			UnitPrice: unitPrice,
			Supplier:  req.Supplier,
			UserID:    actor.ID,
		}
		if err := s.transactionRepo.Create(tx, record); err != nil {
			return err
		}

		if req.Type == model.TxExit {
			if w := exitLowStockWarning(product.Quantity, newQuantity, product.MinimumStock); w != nil {
				warnings = append(warnings, *w)
			}
		}

		record.Product = product
		created = record
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.publish(created, actor, warnings)
	return created, warnings, nil
}

// applyStockChange computes the quantity after a movement, rejecting
// exits that would drive stock negative.
func applyStockChange(current int, txType model.TransactionType, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, apperr.NewValidation("quantity must be greater than zero")
	}
	switch txType {
	case model.TxEntry:
		return current + quantity, nil
	case model.TxExit:
		if current < quantity {
			return 0, &apperr.InsufficientStockError{Current: current, Requested: quantity}
		}
		return current - quantity, nil
	default:
		return 0, apperr.NewValidation("unknown transaction type '%s'", txType)
	}
}

// exitLowStockWarning returns the annex for an exit landing at or below
// the minimum threshold, nil otherwise.
func exitLowStockWarning(before, after, minimum int) *LowStockWarning {
	if after > minimum {
		return nil
	}
	return &LowStockWarning{
		Warning:      "low_stock",
		CurrentStock: before,
		StockAfter:   after,
		MinimumStock: minimum,
	}
}

// publish pushes the committed movement to connected clients. Runs after
// commit; the ledger call itself stays synchronous.
func (s *ledgerService) publish(t *model.Transaction, actor Actor, warnings []LowStockWarning) {
	payload := map[string]interface{}{
		"transaction": t.ToResponse(),
		"user": map[string]interface{}{
			"id":    actor.ID,
			"name":  actor.Name,
			"email": actor.Email,
		},
	}
	s.wsHub.Publish("stock_update", payload)

	for _, w := range warnings {
		s.wsHub.Publish("low_stock", map[string]interface{}{
			"product_id": t.ProductID,
			"warning":    w,
		})
	}
}
