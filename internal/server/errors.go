package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/tailorsoft/atelier/internal/customer/domain"
	expensedomain "github.com/tailorsoft/atelier/internal/expense/domain"
	financedomain "github.com/tailorsoft/atelier/internal/finance/domain"
	orderdomain "github.com/tailorsoft/atelier/internal/order/domain"
	paymentdomain "github.com/tailorsoft/atelier/internal/payment/domain"
	settingsdomain "github.com/tailorsoft/atelier/internal/settings/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := validationErrorCode(err)
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isCustomerValidationError(err),
		isOrderValidationError(err),
		isPaymentValidationError(err),
		isExpenseValidationError(err),
		isSettingsValidationError(err),
		isShopScopeError(err):
		return true
	default:
		return false
	}
}

func isCustomerValidationError(err error) bool {
	return errors.Is(err, customerdomain.ErrInvalidName) ||
		errors.Is(err, customerdomain.ErrInvalidID)
}

func isOrderValidationError(err error) bool {
	return errors.Is(err, orderdomain.ErrInvalidID) ||
		errors.Is(err, orderdomain.ErrInvalidCustomer) ||
		errors.Is(err, orderdomain.ErrInvalidDescription) ||
		errors.Is(err, orderdomain.ErrInvalidGarmentType) ||
		errors.Is(err, orderdomain.ErrInvalidStatus) ||
		errors.Is(err, orderdomain.ErrInvalidPrice) ||
		errors.Is(err, orderdomain.ErrInvalidDeposit)
}

func isPaymentValidationError(err error) bool {
	return errors.Is(err, paymentdomain.ErrInvalidID) ||
		errors.Is(err, paymentdomain.ErrInvalidOrder) ||
		errors.Is(err, paymentdomain.ErrInvalidAmount)
}

func isExpenseValidationError(err error) bool {
	return errors.Is(err, expensedomain.ErrInvalidID) ||
		errors.Is(err, expensedomain.ErrInvalidCategory) ||
		errors.Is(err, expensedomain.ErrInvalidDescription) ||
		errors.Is(err, expensedomain.ErrInvalidAmount)
}

func isSettingsValidationError(err error) bool {
	return errors.Is(err, settingsdomain.ErrInvalidTheme)
}

func isShopScopeError(err error) bool {
	return errors.Is(err, customerdomain.ErrInvalidShop) ||
		errors.Is(err, orderdomain.ErrInvalidShop) ||
		errors.Is(err, paymentdomain.ErrInvalidShop) ||
		errors.Is(err, expensedomain.ErrInvalidShop) ||
		errors.Is(err, settingsdomain.ErrInvalidShop) ||
		errors.Is(err, financedomain.ErrInvalidShop)
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, customerdomain.ErrNotFound),
		errors.Is(err, orderdomain.ErrNotFound),
		errors.Is(err, paymentdomain.ErrNotFound),
		errors.Is(err, expensedomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorCode(err error) string {
	if errors.Is(err, ErrInvalidRequest) {
		return "invalid_request"
	}
	return err.Error()
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}

// classifyErrorForLog tags request log lines with a coarse error type
// and the sentinel code, for filtering in log search.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	switch {
	case asValidationErrors(err) != nil, isValidationError(err):
		return "validation", validationErrorCode(err)
	case isNotFoundError(err):
		return "not_found", "not_found"
	default:
		return "internal", "internal_error"
	}
}
