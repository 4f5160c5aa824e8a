package routes

import (
	"net/http"
	"time"

	"github.com/yuvarajsadam/ExpenseTracker/internal/contracts"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
	appErrors "github.com/yuvarajsadam/ExpenseTracker/internal/errors"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters, err := h.parseTransactionFilters(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sort, err := transaction.ParseSort(c.Query("sort"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination, err := h.parsePagination(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.GetAllTransactions(ctx, userID, filters, sort, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total))
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	entity := transaction.Transaction{
		UserId:      userID,
		Title:       body.Title,
		Amount:      *body.Amount,
		Category:    transaction.Category(body.Category),
		Description: body.Description,
		Type:        transaction.Types(body.Type),
	}
	if body.Date != nil {
		entity.Date = *body.Date
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.CreateTransaction(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	upd := transaction.Update{
		Title:       body.Title,
		Amount:      body.Amount,
		Date:        body.Date,
		Description: body.Description,
	}
	if body.Category != nil {
		category := transaction.Category(*body.Category)
		upd.Category = &category
	}
	if body.Type != nil {
		transactionType := transaction.Types(*body.Type)
		upd.Type = &transactionType
	}

	ctx := c.Request.Context()
	updated, err := h.TransactionService.UpdateTransaction(ctx, transactionID, userID, &upd)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has an invalid format"))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.DeleteTransaction(ctx, transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionDeleteResponse{Id: transactionID.String()})
}

func (h *Handler) GetSummary(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	result, err := h.SummaryService.GetSummary(ctx, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) parseTransactionFilters(c *gin.Context) (*transaction.Filters, error) {
	filters := &transaction.Filters{
		Search: c.Query("search"),
	}

	if raw := c.Query("category"); raw != "" {
		category := transaction.Category(raw)
		if !category.Valid() {
			return nil, appErrors.NewValidationError("category", "is not a recognized category")
		}
		filters.Category = &category
	}

	startDate, err := parseDateParam(c.Query("startDate"))
	if err != nil {
		return nil, appErrors.NewValidationError("startDate", "must be a date (2006-01-02 or RFC 3339)")
	}
	filters.StartDate = startDate

	endDate, err := parseDateParam(c.Query("endDate"))
	if err != nil {
		return nil, appErrors.NewValidationError("endDate", "must be a date (2006-01-02 or RFC 3339)")
	}
	filters.EndDate = endDate

	return filters, nil
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, appErrors.ErrBadRequest
}
