package handler

import (
	"fmt"
	"net/http"

	"estoquepos/internal/apierror"
	"estoquepos/internal/dto"
	"estoquepos/internal/infra"
	"estoquepos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// RegistrarVenda godoc
// @Summary      Registrar uma nova venda
// @Description  Cria uma venda ACID: decrementa o estoque, grava a venda e a movimentação de saída na mesma transação.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVendaRequest true "Detalhe da venda"
// @Success      201  {object} dto.ReciboResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/vendas [post]
func (h *VendasHandler) RegistrarVenda(c *gin.Context) {
	var req dto.RegistrarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarVenda(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar vendas
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        produto_id query string false "Filtro por produto (UUID)"
// @Param        page       query int    false "Página (default 1)"
// @Param        limit      query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.VendaListResponse
// @Router       /v1/vendas [get]
func (h *VendasHandler) Listar(c *gin.Context) {
	var filter dto.VendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar vendas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadRecibo godoc
// @Summary      Baixar recibo em PDF
// @Tags         vendas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/vendas/{id}/recibo [get]
func (h *VendasHandler) DownloadRecibo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	recibo, err := h.svc.ObterRecibo(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=recibo_%s.pdf", recibo.VendaID))
	if err := infra.GerarReciboPDF(recibo, c.Writer); err != nil {
		_ = c.Error(err)
	}
}
