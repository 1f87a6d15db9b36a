package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/service"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/response"
)

// AuthHandler wires signup and signin endpoints to the auth service. Each
// role surface mounts the same handlers with its own role.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Signup godoc
// @Summary Register an account
// @Description Register an account under the role of the mounted surface
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SignupRequest true "Signup payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /{role}/signup [post]
func (h *AuthHandler) Signup(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signup payload"))
			return
		}

		info, err := h.service.Signup(c.Request.Context(), role, req)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.Created(c, info)
	}
}

// Signin godoc
// @Summary Authenticate
// @Description Authenticate by email and password for the mounted role
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SigninRequest true "Signin payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /{role}/signin [post]
func (h *AuthHandler) Signin(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SigninRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signin payload"))
			return
		}

		res, err := h.service.Signin(c.Request.Context(), role, req)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.JSON(c, http.StatusOK, res, nil)
	}
}

// Me godoc
// @Summary Get current user
// @Description Returns the authenticated principal from the access token
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"id":              claims.UserID,
		"role":            claims.Role,
		"registration_id": claims.RegistrationID,
	}, nil)
}
