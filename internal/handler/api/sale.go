package api

import (
	"errors"
	"net/http"

	"safestore/internal/domain/sale"
	reqdto "safestore/internal/handler/dto/request"
	resdto "safestore/internal/handler/dto/response"
	"safestore/internal/handler/httperr"
	"safestore/internal/handler/middleware"
	"safestore/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	saleUseCase usecase.SaleUseCase
}

func NewSaleHandler(saleUseCase usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{saleUseCase: saleUseCase}
}

// @Summary Record sale
// @Description Record a finalized sale; lines for the same product are merged and checked against stock
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSaleRequest true "Sale"
// @Success 201 {object} resdto.SaleResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.saleUseCase.CreateSale(c.Request.Context(), sellerID, usecase.CreateSaleParams{
		BuyerID: req.BuyerID,
		Lines:   req.ToRequestLines(),
	})
	if err != nil {
		respondSaleError(c, err)
		return
	}

	resp, err := resdto.NewSaleResponse(created)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary List sales
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.SaleListResponse
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.saleUseCase.ListSales(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.NewSaleListResponse(sales)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get sale
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} resdto.SaleResponse
// @Failure 404 {object} map[string]string
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.saleUseCase.GetSale(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Sale not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.NewSaleResponse(found)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func respondSaleError(c *gin.Context, err error) {
	if ve, ok := sale.AsValidation(err); ok {
		detail := gin.H{"field": string(ve.Field)}
		if ve.Available != nil {
			detail["available"] = *ve.Available
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, ve.Message, detail)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, usecase.ErrProductNotAvailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Product is not available for sale", nil)
	case errors.Is(err, usecase.ErrStockConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Stock changed while recording the sale, reload and retry", nil)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
