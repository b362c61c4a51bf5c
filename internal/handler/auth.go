package handler

import (
	"net/http"
	"time"

	"estoquepos/internal/dto"
	"estoquepos/internal/middleware"
	"estoquepos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Registrar godoc
// @Summary Registro de usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegistrarRequest true "Dados do usuário"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/auth/register [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Login de usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Logout — revoga o token atual
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := h.svc.Logout(c.Request.Context(), claims.ID, expiresAt); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
