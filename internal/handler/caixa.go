package handler

import (
	"net/http"

	"estoquepos/internal/dto"
	"estoquepos/internal/service"

	"github.com/gin-gonic/gin"
)

type CaixaHandler struct{ svc service.CaixaService }

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler { return &CaixaHandler{svc: svc} }

// Fechar godoc
// @Summary      Fechar o caixa
// @Description  Zera a quantidade de todos os produtos. Operação destrutiva: exige confirmar=true e NÃO gera movimentações no livro de estoque.
// @Tags         caixa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.FecharCaixaRequest true "Confirmação"
// @Success      200 {object} dto.FecharCaixaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/caixa/fechar [post]
func (h *CaixaHandler) Fechar(c *gin.Context) {
	var req dto.FecharCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
