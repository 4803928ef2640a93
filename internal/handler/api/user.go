package api

import (
	"errors"
	"net/http"

	reqdto "safestore/internal/handler/dto/request"
	resdto "safestore/internal/handler/dto/response"
	"safestore/internal/handler/middleware"
	"safestore/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// @Summary List users
// @Description List all console accounts
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.AuthorizedUserRM
// @Failure 403 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Delete user
// @Description Delete a console account
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), actorID, targetID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCannotDeleteSelf):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cannot delete own account",
			})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
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

// @Summary Update profile
// @Description Update the authenticated user's profile fields
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} readmodel.AuthorizedUserRM
// @Failure 400 {object} map[string]string
// @Router /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	user, err := h.userUseCase.UpdateProfile(c.Request.Context(), userID, usecase.UpdateProfileParams{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary List roles
// @Description List assignable account roles
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.RolesResponse
// @Router /roles [get]
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles := h.userUseCase.ListRoles(c.Request.Context())
	c.JSON(http.StatusOK, resdto.RolesResponse{Roles: roles})
}
