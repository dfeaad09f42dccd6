package api

import (
	"errors"
	"net/http"

	"libris/internal/handler/dto/request"
	"libris/internal/handler/dto/response"
	"libris/internal/handler/middleware"
	"libris/internal/pkg/config"
	"libris/internal/pkg/cookie"
	"libris/internal/pkg/jwt"
	"libris/internal/usecase/commands"
	"libris/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      commands.AuthCommands
	users     queries.UserQueries
	jwt       *jwt.Service
	cookieCfg config.CookieConfig
}

func NewAuthHandler(
	auth commands.AuthCommands,
	users queries.UserQueries,
	jwtService *jwt.Service,
	cookieCfg config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		auth:      auth,
		users:     users,
		jwt:       jwtService,
		cookieCfg: cookieCfg,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), commands.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		default:
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.Token, h.jwt.TokenDuration())
	c.JSON(http.StatusCreated, response.AuthResponse{
		AccessToken: result.Token,
		User:        response.FromUserView(result.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.Token, h.jwt.TokenDuration())
	c.JSON(http.StatusOK, response.AuthResponse{
		AccessToken: result.Token,
		User:        response.FromUserView(result.User),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
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

	c.JSON(http.StatusOK, response.FromUserView(view))
}
