package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/loginhub/auth-service/internal/adapters/transport/http/dto"
	"github.com/loginhub/auth-service/internal/adapters/transport/http/middleware"
	"github.com/loginhub/auth-service/internal/app/auth/service"
	authErrors "github.com/loginhub/auth-service/internal/domain/auth/errors"
	"github.com/loginhub/auth-service/internal/domain/auth/model"
	"github.com/loginhub/auth-service/internal/domain/auth/token"
)

type Handler struct {
	svc    service.Service
	tokens token.TokenUtil
	log    *zap.Logger
}

func NewHandler(svc service.Service, tokens token.TokenUtil, log *zap.Logger) *Handler {
	return &Handler{svc: svc, tokens: tokens, log: log}
}

// Register mounts the public API on the router. /api/me sits behind the
// bearer-token gate; everything else is unauthenticated.
func (h *Handler) Register(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/register", h.register)
	api.POST("/login", h.login)
	api.GET("/me", middleware.RequireAuth(h.tokens), h.me)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})
}

func (h *Handler) register(c *gin.Context) {
	var body dto.RegisterDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, userDTO(user))
}

func (h *Handler) login(c *gin.Context) {
	var body dto.LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.svc.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponseDTO{
		Token: session.Token,
		User:  userDTO(session.User),
	})
}

func (h *Handler) me(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.UserDTO{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	}})
}

// handleError translates the sentinel taxonomy into status + JSON. "User
// not found" and "wrong password" deliberately stay distinguishable only by
// status code.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case authErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
	case authErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
	case authErrors.IsNotFound(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
	case authErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
	default:
		h.log.Error("internal error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func userDTO(u model.User) dto.UserDTO {
	return dto.UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}
