package handler

import (
	"net/http"
	"time"

	"estoquepos/internal/apierror"
	"estoquepos/internal/dto"
	"estoquepos/internal/model"
	"estoquepos/internal/repository"

	"github.com/gin-gonic/gin"
)

// MovimentosHandler serves the append-only stock movement ledger.
type MovimentosHandler struct {
	repo repository.MovimentoEstoqueRepository
}

func NewMovimentosHandler(repo repository.MovimentoEstoqueRepository) *MovimentosHandler {
	return &MovimentosHandler{repo: repo}
}

// Listar godoc
// @Summary      Livro de movimentações de estoque
// @Description  Retorna o histórico imutável de entradas e saídas, ordenado por data descendente.
// @Tags         movimentos
// @Produce      json
// @Security     BearerAuth
// @Param        produto_id query string false "Filtro por produto (UUID)"
// @Param        tipo       query string false "entrada | saida"
// @Param        page       query int    false "Página (default 1)"
// @Param        limit      query int    false "Registros por página (default 100)"
// @Success      200 {object} dto.MovimentoListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/movimentos [get]
func (h *MovimentosHandler) Listar(c *gin.Context) {
	var filter dto.MovimentoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtro inválido"))
		return
	}

	rows, total, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao obter movimentações"))
		return
	}

	data := make([]dto.MovimentoResponse, 0, len(rows))
	for i := range rows {
		data = append(data, movimentoToDTO(&rows[i]))
	}

	c.JSON(http.StatusOK, dto.MovimentoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

func movimentoToDTO(m *model.MovimentoEstoque) dto.MovimentoResponse {
	item := dto.MovimentoResponse{
		ID:              m.ID.String(),
		ProdutoID:       m.ProdutoID.String(),
		Tipo:            m.Tipo,
		Quantidade:      m.Quantidade,
		EstoqueAnterior: m.EstoqueAnterior,
		EstoqueNovo:     m.EstoqueNovo,
		Motivo:          m.Motivo,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
	if m.Produto != nil {
		item.Produto = m.Produto.Nome
	}
	return item
}
