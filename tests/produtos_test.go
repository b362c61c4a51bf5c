package tests

import (
	"context"
	"testing"

	"estoquepos/internal/dto"
	"estoquepos/internal/model"
	"estoquepos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProdutoSvc(partialUpdate bool) (service.ProdutoService, *stubProdutoRepo, *stubMovimentoRepo) {
	produtoRepo := newStubProdutoRepo()
	movimentoRepo := &stubMovimentoRepo{}
	svc := service.NewProdutoService(produtoRepo, movimentoRepo, partialUpdate)
	return svc, produtoRepo, movimentoRepo
}

func TestCriarProduto_ComEstoqueInicial(t *testing.T) {
	svc, produtoRepo, movimentoRepo := buildProdutoSvc(false)

	resp, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Codigo:        "CAF-001",
		Nome:          "Café Torrado 500g",
		Quantidade:    12,
		ValorUnitario: decimal.NewFromFloat(18.90),
		EstoqueMinimo: 3,
		Categoria:     "mercearia",
	})
	require.NoError(t, err)
	assert.Equal(t, "CAF-001", resp.Codigo)
	assert.Equal(t, 12, resp.Quantidade)
	assert.Len(t, produtoRepo.produtos, 1)

	// Initial stock produces an entrada ledger entry
	require.Len(t, movimentoRepo.movimentos, 1)
	mov := movimentoRepo.movimentos[0]
	assert.Equal(t, model.MovimentoEntrada, mov.Tipo)
	assert.Equal(t, 12, mov.Quantidade)
	assert.Equal(t, 0, mov.EstoqueAnterior)
	assert.Equal(t, 12, mov.EstoqueNovo)
	assert.Equal(t, "estoque inicial", mov.Motivo)
}

func TestCriarProduto_SemEstoque_SemMovimento(t *testing.T) {
	svc, _, movimentoRepo := buildProdutoSvc(false)

	_, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Codigo:        "ENC-010",
		Nome:          "Produto sob Encomenda",
		Quantidade:    0,
		ValorUnitario: decimal.NewFromFloat(99.00),
	})
	require.NoError(t, err)
	assert.Empty(t, movimentoRepo.movimentos)
}

func TestCriarProduto_CodigoDuplicado(t *testing.T) {
	svc, produtoRepo, _ := buildProdutoSvc(false)
	seedProduto(produtoRepo, "CAF-001", "Café Torrado 500g", 5, 18.90)

	_, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		Codigo:        "CAF-001",
		Nome:          "Outro Café",
		ValorUnitario: decimal.NewFromFloat(20.00),
	})
	assert.ErrorIs(t, err, service.ErrCodigoDuplicado)
	assert.Len(t, produtoRepo.produtos, 1)
}

func TestAtualizarProduto_AjusteAbsoluto(t *testing.T) {
	svc, produtoRepo, movimentoRepo := buildProdutoSvc(false)
	p := seedProduto(produtoRepo, "ARR-002", "Arroz Tipo 1 5kg", 6, 23.90)

	resp, err := svc.Atualizar(context.Background(), p.ID, dto.AtualizarProdutoRequest{
		Nome:          "Arroz Tipo 1 5kg",
		Quantidade:    20,
		ValorUnitario: decimal.NewFromFloat(24.50),
	})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Quantidade)

	// The edit-path ledger entry records the RESULTING stock, not the delta;
	// the transition stays auditable through estoque_anterior/estoque_novo.
	require.Len(t, movimentoRepo.movimentos, 1)
	mov := movimentoRepo.movimentos[0]
	assert.Equal(t, model.MovimentoEntrada, mov.Tipo)
	assert.Equal(t, 20, mov.Quantidade)
	assert.Equal(t, 6, mov.EstoqueAnterior)
	assert.Equal(t, 20, mov.EstoqueNovo)
	assert.Contains(t, mov.Motivo, "ajuste absoluto")
}

func TestAtualizarProduto_SemMudancaDeEstoque(t *testing.T) {
	svc, produtoRepo, movimentoRepo := buildProdutoSvc(false)
	p := seedProduto(produtoRepo, "LEI-003", "Leite Integral 1L", 30, 4.79)

	_, err := svc.Atualizar(context.Background(), p.ID, dto.AtualizarProdutoRequest{
		Nome:          "Leite Integral UHT 1L",
		Quantidade:    30,
		ValorUnitario: decimal.NewFromFloat(4.99),
	})
	require.NoError(t, err)

	// Price-only edits never touch the ledger
	assert.Empty(t, movimentoRepo.movimentos)
	assert.Equal(t, "Leite Integral UHT 1L", produtoRepo.produtos[p.ID].Nome)
}

func TestAtualizarProduto_ModoParcial(t *testing.T) {
	svc, produtoRepo, movimentoRepo := buildProdutoSvc(true)
	p := seedProduto(produtoRepo, "FEI-004", "Feijão Preto 1kg", 15, 8.25)
	p.Categoria = "mercearia"

	_, err := svc.Atualizar(context.Background(), p.ID, dto.AtualizarProdutoRequest{
		Nome:          "Feijão Preto Especial 1kg",
		Quantidade:    999, // ignored in partial mode
		ValorUnitario: decimal.NewFromFloat(8.90),
		Categoria:     "outra",
	})
	require.NoError(t, err)

	got := produtoRepo.produtos[p.ID]
	assert.Equal(t, "Feijão Preto Especial 1kg", got.Nome)
	assert.Equal(t, "8.9", got.ValorUnitario.String())
	assert.Equal(t, 15, got.Quantidade)
	assert.Equal(t, "mercearia", got.Categoria)
	assert.Empty(t, movimentoRepo.movimentos)
}

func TestObterPorID_NaoEncontrado(t *testing.T) {
	svc, _, _ := buildProdutoSvc(false)
	_, err := svc.ObterPorID(context.Background(), mustUUID(t, "5f9c5f9c-0000-0000-0000-000000000003"))
	assert.ErrorIs(t, err, service.ErrProdutoNaoEncontrado)
}

func TestListarProdutos_FiltroPorNome(t *testing.T) {
	svc, produtoRepo, _ := buildProdutoSvc(false)
	seedProduto(produtoRepo, "CAF-001", "Café Torrado 500g", 5, 18.90)
	seedProduto(produtoRepo, "ARR-002", "Arroz Tipo 1 5kg", 10, 23.90)

	resp, err := svc.Listar(context.Background(), dto.ProdutoFilter{Nome: "café", Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "CAF-001", resp.Data[0].Codigo)
	assert.Equal(t, int64(1), resp.Total)
}
