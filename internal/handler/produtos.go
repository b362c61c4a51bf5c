package handler

import (
	"net/http"

	"estoquepos/internal/apierror"
	"estoquepos/internal/dto"
	"estoquepos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastrar produto
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarProdutoRequest true "Dados do produto"
// @Success 201 {object} dto.ProdutoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/produtos [post]
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary Listar produtos
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param nome      query string false "Filtro por nome (substring)"
// @Param categoria query string false "Filtro por categoria"
// @Param page      query int    false "Página (default 1)"
// @Param limit     query int    false "Registros por página (default 20)"
// @Success 200 {object} dto.ProdutoListResponse
// @Router /v1/produtos [get]
func (h *ProdutosHandler) Listar(c *gin.Context) {
	var filter dto.ProdutoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID godoc
// @Summary Obter produto por ID
// @Tags produtos
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID do produto"
// @Success 200 {object} dto.ProdutoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/produtos/{id} [get]
func (h *ProdutosHandler) ObterPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary Atualizar produto
// @Description Sobrescreve os campos editáveis e registra a movimentação de ajuste no livro de estoque.
// @Tags produtos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id   path string                      true "UUID do produto"
// @Param body body dto.AtualizarProdutoRequest true "Novos dados"
// @Success 200 {object} dto.ProdutoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/produtos/{id} [put]
func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
