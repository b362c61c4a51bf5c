package service

import (
	"context"
	"errors"
	"fmt"

	"estoquepos/internal/dto"
	"estoquepos/internal/model"
	"estoquepos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoService defines the business logic contract for the catalog.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
}

type produtoService struct {
	repo          repository.ProdutoRepository
	movimentoRepo repository.MovimentoEstoqueRepository
	// partialUpdate enables the legacy edit mode that only overwrites
	// nome, valor_unitario and desconto.
	partialUpdate bool
}

func NewProdutoService(repo repository.ProdutoRepository, movimentoRepo repository.MovimentoEstoqueRepository, partialUpdate bool) ProdutoService {
	return &produtoService{repo: repo, movimentoRepo: movimentoRepo, partialUpdate: partialUpdate}
}

// Criar persists a new product and, when it enters with stock, the matching
// entrada ledger entry — both inside one transaction.
func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if _, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil {
		return nil, ErrCodigoDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	produto := &model.Produto{
		Codigo:        req.Codigo,
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Quantidade:    req.Quantidade,
		ValorUnitario: req.ValorUnitario,
		Desconto:      req.Desconto,
		EstoqueMinimo: req.EstoqueMinimo,
		Categoria:     req.Categoria,
		Marca:         req.Marca,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, produto); err != nil {
			return err
		}
		if produto.Quantidade > 0 {
			mov := &model.MovimentoEstoque{
				ProdutoID:       produto.ID,
				Tipo:            model.MovimentoEntrada,
				Quantidade:      produto.Quantidade,
				EstoqueAnterior: 0,
				EstoqueNovo:     produto.Quantidade,
				Motivo:          "estoque inicial",
			}
			return s.movimentoRepo.CreateTx(tx, mov)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	return produtoToResponse(produto), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		items = append(items, *produtoToResponse(&produtos[i]))
	}
	return &dto.ProdutoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Atualizar overwrites the product from the request. When the stock value
// changes, the ledger receives an entrada entry carrying the RESULTING
// quantity — not the delta. That matches the historical edit behavior; the
// estoque_anterior/estoque_novo columns keep the real transition visible.
func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}

	estoqueAnterior := produto.Quantidade

	produto.Nome = req.Nome
	produto.ValorUnitario = req.ValorUnitario
	produto.Desconto = req.Desconto
	if !s.partialUpdate {
		produto.Descricao = req.Descricao
		produto.Quantidade = req.Quantidade
		produto.EstoqueMinimo = req.EstoqueMinimo
		produto.Categoria = req.Categoria
		produto.Marca = req.Marca
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateTx(tx, produto); err != nil {
			return err
		}
		if produto.Quantidade != estoqueAnterior {
			mov := &model.MovimentoEstoque{
				ProdutoID:       produto.ID,
				Tipo:            model.MovimentoEntrada,
				Quantidade:      produto.Quantidade, // absolute: resulting stock, not the delta
				EstoqueAnterior: estoqueAnterior,
				EstoqueNovo:     produto.Quantidade,
				Motivo:          fmt.Sprintf("ajuste absoluto — edição de %s", produto.Codigo),
			}
			return s.movimentoRepo.CreateTx(tx, mov)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return produtoToResponse(produto), nil
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:            p.ID.String(),
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		Quantidade:    p.Quantidade,
		ValorUnitario: p.ValorUnitario,
		Desconto:      p.Desconto,
		EstoqueMinimo: p.EstoqueMinimo,
		Categoria:     p.Categoria,
		Marca:         p.Marca,
	}
}
