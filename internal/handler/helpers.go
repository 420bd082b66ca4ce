package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/allansomensi/printer-supplies-api/internal/apierror"
	"github.com/allansomensi/printer-supplies-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeLedgerError maps the ledger's error taxonomy onto HTTP statuses.
// Client errors (400/404/409) are terminal; 503 marks transient failures the
// caller may resubmit.
func writeLedgerError(c *gin.Context, err error) {
	var stockErr *service.InsufficientStockError
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusNotFound, apierror.New("supply item not found"))
	case errors.Is(err, service.ErrPrinterNotFound):
		c.JSON(http.StatusNotFound, apierror.New("printer not found"))
	case errors.Is(err, service.ErrBrandNotFound):
		c.JSON(http.StatusNotFound, apierror.New("brand not found"))
	case errors.Is(err, service.ErrZeroDelta):
		c.JSON(http.StatusBadRequest, apierror.New("quantity_delta cannot be zero"))
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, apierror.NewStock(stockErr.Current, stockErr.Attempted))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusServiceUnavailable, apierror.New("concurrent update conflict, retry later"))
	case errors.Is(err, service.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, apierror.New("store unavailable"))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
