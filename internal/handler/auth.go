package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plsapi/backend/internal/model"
	"github.com/plsapi/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Exchange a Discord authorization code for a bearer token
// @Description Only members of the configured Discord guild get a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.TokenRequest true "Authorization code and redirect URI"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 429 {object} model.ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Code, req.RedirectURI)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MeResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	subject, ok := GetAuthSubject(c)
	if !ok {
		writeError(c, service.ErrInvalidToken)
		return
	}

	me, err := h.svc.Me(c.Request.Context(), subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}
