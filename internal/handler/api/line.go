package api

import (
	"errors"
	"net/http"

	reqdto "safestore/internal/handler/dto/request"
	"safestore/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LineHandler struct {
	lineUseCase usecase.LineUseCase
}

func NewLineHandler(lineUseCase usecase.LineUseCase) *LineHandler {
	return &LineHandler{lineUseCase: lineUseCase}
}

// @Summary List lines
// @Tags lines
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.LineRM
// @Router /lines [get]
func (h *LineHandler) ListLines(c *gin.Context) {
	lines, err := h.lineUseCase.ListLines(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, lines)
}

// @Summary Get line
// @Tags lines
// @Security BearerAuth
// @Produce json
// @Param id path int true "Line ID"
// @Success 200 {object} readmodel.LineRM
// @Failure 404 {object} map[string]string
// @Router /lines/{id} [get]
func (h *LineHandler) GetLine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	line, err := h.lineUseCase.GetLine(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Line not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, line)
}

// @Summary Create line
// @Tags lines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.LineRequest true "Line"
// @Success 201 {object} readmodel.LineRM
// @Failure 422 {object} map[string]string
// @Router /lines [post]
func (h *LineHandler) CreateLine(c *gin.Context) {
	var req reqdto.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	line, err := h.lineUseCase.CreateLine(c.Request.Context(), lineParams(req))
	if err != nil {
		respondLineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

// @Summary Update line
// @Tags lines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Line ID"
// @Param request body reqdto.LineRequest true "Line"
// @Success 200 {object} readmodel.LineRM
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lines/{id} [put]
func (h *LineHandler) UpdateLine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	line, err := h.lineUseCase.UpdateLine(c.Request.Context(), id, lineParams(req))
	if err != nil {
		respondLineError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

// @Summary Delete line
// @Tags lines
// @Security BearerAuth
// @Param id path int true "Line ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lines/{id} [delete]
func (h *LineHandler) DeleteLine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.lineUseCase.DeleteLine(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Line not found",
			})
		case errors.Is(err, usecase.ErrLineInUse):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Line is referenced by existing products",
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

func lineParams(req reqdto.LineRequest) usecase.LineParams {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return usecase.LineParams{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    isActive,
	}
}

func respondLineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Line not found",
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
