package handler

import (
	"strconv"
	"time"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	ledgerService   service.LedgerService
	transactionRepo repository.TransactionRepository
}

func NewTransactionHandler(ledgerService service.LedgerService, transactionRepo repository.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService, transactionRepo: transactionRepo}
}

// CreateTransaction records a stock movement through the ledger.
// The response embeds a warnings array when the exit left the product
// at or below its minimum stock.
// POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req service.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, warnings, err := h.ledgerService.ApplyTransaction(&req, actor(c))
	if err != nil {
		return respondError(c, err)
	}

	response := fiber.Map{
		"message": "Transaction recorded",
		"data":    created.ToResponse(),
	}
	if len(warnings) > 0 {
		response["warnings"] = warnings
	}
	return c.Status(201).JSON(response)
}

// GetTransactions lists ledger rows with optional filters
// GET /api/v1/transactions?product=&type=&date_from=&date_to=
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{}

	if productParam := c.Query("product"); productParam != "" {
		id, err := uuid.Parse(productParam)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid product filter"})
		}
		filter.ProductID = &id
	}
	if typeParam := c.Query("type"); typeParam != "" {
		t := model.TransactionType(typeParam)
		if !t.IsValid() {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid type filter"})
		}
		filter.Type = t
	}
	if fromParam := c.Query("date_from"); fromParam != "" {
		from, err := time.Parse("2006-01-02", fromParam)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date_from, use YYYY-MM-DD"})
		}
		filter.DateFrom = &from
	}
	if toParam := c.Query("date_to"); toParam != "" {
		to, err := time.Parse("2006-01-02", toParam)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date_to, use YYYY-MM-DD"})
		}
		// Inclusive upper bound covers the whole day.
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.DateTo = &end
	}

	transactions, err := h.transactionRepo.FindAll(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(toResponses(transactions))
}

// GetRecent lists the last 30 days of movements, capped at 20 rows
// GET /api/v1/transactions/recent
func (h *TransactionHandler) GetRecent(c *fiber.Ctx) error {
	limit := 20
	if limitParam := c.Query("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	since := time.Now().AddDate(0, 0, -30)
	transactions, err := h.transactionRepo.FindSince(since, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(toResponses(transactions))
}

// GetMine lists the authenticated user's own movements
// GET /api/v1/transactions/mine
func (h *TransactionHandler) GetMine(c *fiber.Ctx) error {
	userID := actor(c).ID
	transactions, err := h.transactionRepo.FindAll(repository.TransactionFilter{UserID: &userID})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(toResponses(transactions))
}

// GetTransaction returns one ledger row
// GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	transaction, err := h.transactionRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(transaction.ToResponse())
}

func toResponses(transactions []model.Transaction) []model.TransactionResponse {
	responses := make([]model.TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = transactions[i].ToResponse()
	}
	return responses
}
