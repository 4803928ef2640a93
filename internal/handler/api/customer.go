package api

import (
	"errors"
	"net/http"

	reqdto "safestore/internal/handler/dto/request"
	"safestore/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerUseCase usecase.CustomerUseCase
}

func NewCustomerHandler(customerUseCase usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{customerUseCase: customerUseCase}
}

// @Summary List customers
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.CustomerRM
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerUseCase.ListCustomers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// @Summary Get customer
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} readmodel.CustomerRM
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := h.customerUseCase.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary Create customer
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 201 {object} readmodel.CustomerRM
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	customer, err := h.customerUseCase.CreateCustomer(c.Request.Context(), customerParams(req))
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// @Summary Update customer
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 200 {object} readmodel.CustomerRM
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	customer, err := h.customerUseCase.UpdateCustomer(c.Request.Context(), id, customerParams(req))
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.customerUseCase.DeleteCustomer(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
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

func customerParams(req reqdto.CustomerRequest) usecase.CustomerParams {
	return usecase.CustomerParams{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Address:  req.Address,
		Phone:    req.Phone,
		Document: req.Document,
	}
}

func respondCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Customer not found",
		})
	case errors.Is(err, usecase.ErrDuplicateDocument):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Document number already registered",
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
