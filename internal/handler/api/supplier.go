package api

import (
	"errors"
	"net/http"

	reqdto "safestore/internal/handler/dto/request"
	"safestore/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	supplierUseCase usecase.SupplierUseCase
}

func NewSupplierHandler(supplierUseCase usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{supplierUseCase: supplierUseCase}
}

// @Summary List suppliers
// @Tags suppliers
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.SupplierRM
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.supplierUseCase.ListSuppliers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// @Summary Get supplier
// @Tags suppliers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} readmodel.SupplierRM
// @Failure 404 {object} map[string]string
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	supplier, err := h.supplierUseCase.GetSupplier(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Supplier not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// @Summary Create supplier
// @Tags suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SupplierRequest true "Supplier"
// @Success 201 {object} readmodel.SupplierRM
// @Failure 422 {object} map[string]string
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req reqdto.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	supplier, err := h.supplierUseCase.CreateSupplier(c.Request.Context(), supplierParams(req))
	if err != nil {
		respondSupplierError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// @Summary Update supplier
// @Tags suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param request body reqdto.SupplierRequest true "Supplier"
// @Success 200 {object} readmodel.SupplierRM
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	supplier, err := h.supplierUseCase.UpdateSupplier(c.Request.Context(), id, supplierParams(req))
	if err != nil {
		respondSupplierError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// @Summary Delete supplier
// @Tags suppliers
// @Security BearerAuth
// @Param id path int true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.supplierUseCase.DeleteSupplier(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrSupplierNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Supplier not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

func supplierParams(req reqdto.SupplierRequest) usecase.SupplierParams {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return usecase.SupplierParams{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: isActive,
	}
}

func respondSupplierError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrSupplierNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Supplier not found",
		})
	case isDomainValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
