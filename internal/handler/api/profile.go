package api

import (
	"errors"
	"net/http"

	"libris/internal/domain/user"
	"libris/internal/handler/dto/request"
	"libris/internal/handler/dto/response"
	"libris/internal/handler/middleware"
	"libris/internal/pkg/config"
	"libris/internal/pkg/cookie"
	"libris/internal/usecase/commands"
	"libris/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	commands  commands.UserCommands
	queries   queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewProfileHandler(
	userCommands commands.UserCommands,
	userQueries queries.UserQueries,
	cookieCfg config.CookieConfig,
) *ProfileHandler {
	return &ProfileHandler{
		commands:  userCommands,
		queries:   userQueries,
		cookieCfg: cookieCfg,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.queries.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
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

	c.JSON(http.StatusOK, response.FromProfileView(view))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.UpdateProfile(c.Request.Context(), userID, commands.UpdateProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		NewPassword:     req.NewPassword,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWrongCurrentPassword):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Current password does not match",
			})
		case errors.Is(err, commands.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		case errors.Is(err, commands.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrPasswordTooWeak):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, response.FromUserView(view))
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req request.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Current password is required",
		})
		return
	}

	err := h.commands.DeleteAccount(c.Request.Context(), userID, req.CurrentPassword)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWrongCurrentPassword):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Current password does not match",
			})
		case errors.Is(err, commands.ErrActiveReservation):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cancel your active reservation before deleting the account",
			})
		case errors.Is(err, commands.ErrUserNotFound):
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

	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
