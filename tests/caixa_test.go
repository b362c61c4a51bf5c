package tests

import (
	"context"
	"testing"

	"estoquepos/internal/dto"
	"estoquepos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFecharCaixa_SemConfirmacao(t *testing.T) {
	produtoRepo := newStubProdutoRepo()
	seedProduto(produtoRepo, "CAF-001", "Café Torrado 500g", 10, 18.90)
	svc := service.NewCaixaService(produtoRepo)

	_, err := svc.Fechar(context.Background(), dto.FecharCaixaRequest{Confirmar: false})
	assert.ErrorIs(t, err, service.ErrFechamentoNaoConfirmado)

	// Stock untouched without confirmation
	for _, p := range produtoRepo.produtos {
		assert.Equal(t, 10, p.Quantidade)
	}
}

func TestFecharCaixa_ZeraEstoque(t *testing.T) {
	produtoRepo := newStubProdutoRepo()
	seedProduto(produtoRepo, "CAF-001", "Café Torrado 500g", 10, 18.90)
	seedProduto(produtoRepo, "ARR-002", "Arroz Tipo 1 5kg", 4, 23.90)
	seedProduto(produtoRepo, "LEI-003", "Leite Integral 1L", 0, 4.79)
	svc := service.NewCaixaService(produtoRepo)

	resp, err := svc.Fechar(context.Background(), dto.FecharCaixaRequest{Confirmar: true})
	require.NoError(t, err)

	// Only rows with stock count as touched
	assert.Equal(t, int64(2), resp.ProdutosZerados)
	assert.Equal(t, service.AvisoFechamentoSemLedger, resp.Aviso)

	for _, p := range produtoRepo.produtos {
		assert.Equal(t, 0, p.Quantidade)
	}
}

func TestFecharCaixa_Idempotente(t *testing.T) {
	produtoRepo := newStubProdutoRepo()
	seedProduto(produtoRepo, "CAF-001", "Café Torrado 500g", 10, 18.90)
	svc := service.NewCaixaService(produtoRepo)

	_, err := svc.Fechar(context.Background(), dto.FecharCaixaRequest{Confirmar: true})
	require.NoError(t, err)

	resp, err := svc.Fechar(context.Background(), dto.FecharCaixaRequest{Confirmar: true})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.ProdutosZerados)
}
