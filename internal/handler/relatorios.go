package handler

import (
	"net/http"
	"time"

	"estoquepos/internal/apierror"
	"estoquepos/internal/infra"
	"estoquepos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

func parseProdutoID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("produto_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("produto_id inválido"))
		return nil, false
	}
	return &id, true
}

// Vendas godoc
// @Summary      Relatório de vendas
// @Description  Todas as vendas com total por linha e total geral (formatado em pt-BR).
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        produto_id query string false "Filtro por produto (UUID)"
// @Success      200 {object} dto.RelatorioVendasResponse
// @Router       /v1/relatorios/vendas [get]
func (h *RelatoriosHandler) Vendas(c *gin.Context) {
	produtoID, ok := parseProdutoID(c)
	if !ok {
		return
	}
	resp, err := h.svc.RelatorioVendas(c.Request.Context(), produtoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatório de vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VendasPDF godoc
// @Summary      Relatório de vendas em PDF
// @Description  Versão paginada para impressão, com cabeçalho repetido por página.
// @Tags         relatorios
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        produto_id query string false "Filtro por produto (UUID)"
// @Success      200 {file} binary
// @Router       /v1/relatorios/vendas/pdf [get]
func (h *RelatoriosHandler) VendasPDF(c *gin.Context) {
	produtoID, ok := parseProdutoID(c)
	if !ok {
		return
	}
	rel, err := h.svc.RelatorioVendas(c.Request.Context(), produtoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatório de vendas"))
		return
	}

	filename := "relatorio_vendas_" + time.Now().Format("2006-01-02") + ".pdf"
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := infra.GerarRelatorioVendasPDF(rel, c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// Estoque godoc
// @Summary      Relatório de estoque
// @Description  Posição atual de estoque de todos os produtos, sinalizando os abaixo do mínimo.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.RelatorioEstoqueResponse
// @Router       /v1/relatorios/estoque [get]
func (h *RelatoriosHandler) Estoque(c *gin.Context) {
	resp, err := h.svc.RelatorioEstoque(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatório de estoque"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
