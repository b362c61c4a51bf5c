package service

import (
	"context"
	"time"

	"estoquepos/internal/dto"
	"estoquepos/internal/moeda"
	"estoquepos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RelatorioService aggregates sales and stock for on-screen and PDF reports.
// Totals stay numeric here; currency formatting is a boundary concern.
type RelatorioService interface {
	RelatorioVendas(ctx context.Context, produtoID *uuid.UUID) (*dto.RelatorioVendasResponse, error)
	RelatorioEstoque(ctx context.Context) (*dto.RelatorioEstoqueResponse, error)
}

type relatorioService struct {
	vendaRepo   repository.VendaRepository
	produtoRepo repository.ProdutoRepository
}

func NewRelatorioService(vendaRepo repository.VendaRepository, produtoRepo repository.ProdutoRepository) RelatorioService {
	return &relatorioService{vendaRepo: vendaRepo, produtoRepo: produtoRepo}
}

func (s *relatorioService) RelatorioVendas(ctx context.Context, produtoID *uuid.UUID) (*dto.RelatorioVendasResponse, error) {
	vendas, err := s.vendaRepo.ListForReport(ctx, produtoID)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.ItemRelatorioVendas, 0, len(vendas))
	totalGeral := decimal.Zero
	for i := range vendas {
		v := &vendas[i]
		nome := ""
		if v.Produto != nil {
			nome = v.Produto.Nome
		}
		totalLinha := v.ValorUnitario.Mul(decimal.NewFromInt(int64(v.Quantidade)))
		totalGeral = totalGeral.Add(totalLinha)
		itens = append(itens, dto.ItemRelatorioVendas{
			Produto:       nome,
			Quantidade:    v.Quantidade,
			ValorUnitario: v.ValorUnitario,
			TotalLinha:    totalLinha,
			DataVenda:     v.DataVenda.Format(time.RFC3339),
		})
	}

	return &dto.RelatorioVendasResponse{
		Itens:          itens,
		TotalGeral:     totalGeral,
		TotalFormatado: moeda.FormatBRL(totalGeral),
	}, nil
}

func (s *relatorioService) RelatorioEstoque(ctx context.Context) (*dto.RelatorioEstoqueResponse, error) {
	produtos, err := s.produtoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.ItemRelatorioEstoque, 0, len(produtos))
	for i := range produtos {
		p := &produtos[i]
		itens = append(itens, dto.ItemRelatorioEstoque{
			ID:            p.ID.String(),
			Codigo:        p.Codigo,
			Nome:          p.Nome,
			Quantidade:    p.Quantidade,
			EstoqueMinimo: p.EstoqueMinimo,
			ValorUnitario: p.ValorUnitario,
			Categoria:     p.Categoria,
			EstoqueBaixo:  p.Quantidade <= p.EstoqueMinimo,
		})
	}
	return &dto.RelatorioEstoqueResponse{Itens: itens}, nil
}
