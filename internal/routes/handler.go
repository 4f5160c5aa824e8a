package routes

import (
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/summary"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/transaction"
	"github.com/yuvarajsadam/ExpenseTracker/internal/domain/user"
	appErrors "github.com/yuvarajsadam/ExpenseTracker/internal/errors"
	"github.com/yuvarajsadam/ExpenseTracker/internal/logger"
	"github.com/yuvarajsadam/ExpenseTracker/internal/middleware"
	"github.com/yuvarajsadam/ExpenseTracker/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	UserService        *user.Service
	JwtService         *middleware.JwtService
	TransactionService *transaction.Service
	SummaryService     *summary.Service
}

func (h *Handler) GetUserIDFromContext(c *gin.Context) (ulid.ULID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return ulid.ULID{}, appErrors.ErrUnauthorized
	}

	userID, err := pkg.ParseULID(userIDStr.(string))
	if err != nil {
		return ulid.ULID{}, appErrors.ErrUnauthorized.WithError(err)
	}

	return userID, nil
}

// parsePagination rejects explicit non-positive or non-numeric page/limit
// values; absent values take the defaults.
func (h *Handler) parsePagination(c *gin.Context) (*pkg.PaginationParams, error) {
	pagination := &pkg.PaginationParams{Page: 1, Limit: 10}

	if raw := c.Query("page"); raw != "" {
		page, err := pkg.ParseInt(raw)
		if err != nil || page < 1 {
			return nil, appErrors.NewValidationError("page", "must be a positive integer")
		}
		pagination.Page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := pkg.ParseInt(raw)
		if err != nil || limit < 1 {
			return nil, appErrors.NewValidationError("limit", "must be a positive integer")
		}
		pagination.Limit = limit
	}

	pagination.Normalize()
	return pagination, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")

	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
