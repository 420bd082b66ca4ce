package handler

import (
	"net/http"

	"github.com/allansomensi/printer-supplies-api/internal/apierror"
	"github.com/allansomensi/printer-supplies-api/internal/dto"
	"github.com/allansomensi/printer-supplies-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PrintersHandler struct{ svc service.PrinterService }

func NewPrintersHandler(svc service.PrinterService) *PrintersHandler {
	return &PrintersHandler{svc: svc}
}

func (h *PrintersHandler) Create(c *gin.Context) {
	var req dto.CreatePrinterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PrintersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("error listing printers"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PrintersHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PrintersHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdatePrinterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PrintersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
