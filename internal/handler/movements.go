package handler

import (
	"net/http"

	"github.com/allansomensi/printer-supplies-api/internal/apierror"
	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/model"
	"github.com/allansomensi/printer-supplies-api/internal/service"

	"github.com/gin-gonic/gin"
)

type MovementsHandler struct{ ledger service.LedgerService }

func NewMovementsHandler(ledger service.LedgerService) *MovementsHandler {
	return &MovementsHandler{ledger: ledger}
}

// Create godoc
// @Summary Apply a stock movement
// @Tags movements
// @Accept json
// @Produce json
// @Param request body dto.CreateMovementRequest true "Movement command"
// @Success 201 {object} dto.MovementReceipt
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.StockError
// @Failure 503 {object} apierror.APIError
// @Router /v1/movements [post]
func (h *MovementsHandler) Create(c *gin.Context) {
	var req dto.CreateMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	receipt, err := h.ledger.ApplyMovement(c.Request.Context(), req)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// List godoc
// @Summary List movements ordered by creation time
// @Tags movements
// @Produce json
// @Success 200 {object} dto.MovementListResponse
// @Router /v1/movements [get]
func (h *MovementsHandler) List(c *gin.Context) {
	var filter dto.MovementFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.ledger.ListMovements(c.Request.Context(), filter)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Count godoc
// @Summary Count movements, optionally by supply kind
// @Tags movements
// @Produce json
// @Param kind query string false "toner | drum"
// @Success 200 {object} dto.MovementCountResponse
// @Router /v1/movements/count [get]
func (h *MovementsHandler) Count(c *gin.Context) {
	kind := model.SupplyKind(c.Query("kind"))
	if kind != "" && !kind.Valid() {
		c.JSON(http.StatusBadRequest, apierror.New("kind must be toner or drum"))
		return
	}
	total, err := h.ledger.CountMovements(c.Request.Context(), kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("error counting movements"))
		return
	}
	c.JSON(http.StatusOK, dto.MovementCountResponse{Total: total})
}
