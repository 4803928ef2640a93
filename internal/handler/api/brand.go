package api

import (
	"errors"
	"net/http"

	reqdto "safestore/internal/handler/dto/request"
	"safestore/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	brandUseCase usecase.BrandUseCase
}

func NewBrandHandler(brandUseCase usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{brandUseCase: brandUseCase}
}

// @Summary List brands
// @Tags brands
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.BrandRM
// @Router /brands [get]
func (h *BrandHandler) ListBrands(c *gin.Context) {
	brands, err := h.brandUseCase.ListBrands(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, brands)
}

// @Summary Get brand
// @Tags brands
// @Security BearerAuth
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} readmodel.BrandRM
// @Failure 404 {object} map[string]string
// @Router /brands/{id} [get]
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	brand, err := h.brandUseCase.GetBrand(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrBrandNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Brand not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, brand)
}

// @Summary Create brand
// @Tags brands
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BrandRequest true "Brand"
// @Success 201 {object} readmodel.BrandRM
// @Failure 422 {object} map[string]string
// @Router /brands [post]
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req reqdto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	brand, err := h.brandUseCase.CreateBrand(c.Request.Context(), brandParams(req))
	if err != nil {
		respondBrandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// @Summary Update brand
// @Tags brands
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param request body reqdto.BrandRequest true "Brand"
// @Success 200 {object} readmodel.BrandRM
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /brands/{id} [put]
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	brand, err := h.brandUseCase.UpdateBrand(c.Request.Context(), id, brandParams(req))
	if err != nil {
		respondBrandError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// @Summary Delete brand
// @Tags brands
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.brandUseCase.DeleteBrand(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBrandNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Brand not found",
			})
		case errors.Is(err, usecase.ErrBrandInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Brand is referenced by existing products",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func brandParams(req reqdto.BrandRequest) usecase.BrandParams {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return usecase.BrandParams{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
		IsActive:    isActive,
	}
}

func respondBrandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBrandNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Brand not found",
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
