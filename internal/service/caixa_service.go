package service

import (
	"context"

	"estoquepos/internal/dto"
	"estoquepos/internal/repository"

	"gorm.io/gorm"
)

// AvisoFechamentoSemLedger is returned with every register close: the
// zero-out does not write movement-ledger entries, so the stock history
// cannot be reconstructed from the ledger across a close.
const AvisoFechamentoSemLedger = "as quantidades foram zeradas sem registro no livro de movimentos de estoque"

type CaixaService interface {
	Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.FecharCaixaResponse, error)
}

type caixaService struct {
	produtoRepo repository.ProdutoRepository
}

func NewCaixaService(produtoRepo repository.ProdutoRepository) CaixaService {
	return &caixaService{produtoRepo: produtoRepo}
}

// Fechar zeroes every product quantity in a single transaction — the bulk
// mutation is all-or-nothing. Confirmar must be true: the operation is
// destructive and leaves no ledger trace.
func (s *caixaService) Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.FecharCaixaResponse, error) {
	if !req.Confirmar {
		return nil, ErrFechamentoNaoConfirmado
	}

	var zerados int64
	txErr := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		n, err := s.produtoRepo.ZerarQuantidadesTx(tx)
		if err != nil {
			return err
		}
		zerados = n
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.FecharCaixaResponse{
		ProdutosZerados: zerados,
		Aviso:           AvisoFechamentoSemLedger,
	}, nil
}
