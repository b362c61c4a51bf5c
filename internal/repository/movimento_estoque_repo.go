package repository

import (
	"context"

	"estoquepos/internal/dto"
	"estoquepos/internal/model"

	"gorm.io/gorm"
)

// MovimentoEstoqueRepository is append-only: there is deliberately no
// Update or Delete — the ledger is immutable.
type MovimentoEstoqueRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error
	List(ctx context.Context, filter dto.MovimentoFilter) ([]model.MovimentoEstoque, int64, error)
}

type movimentoEstoqueRepo struct{ db *gorm.DB }

func NewMovimentoEstoqueRepository(db *gorm.DB) MovimentoEstoqueRepository {
	return &movimentoEstoqueRepo{db: db}
}

func (r *movimentoEstoqueRepo) CreateTx(tx *gorm.DB, m *model.MovimentoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentoEstoqueRepo) List(ctx context.Context, filter dto.MovimentoFilter) ([]model.MovimentoEstoque, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimentoEstoque{}).Preload("Produto")
	if filter.ProdutoID != "" {
		q = q.Where("produto_id = ?", filter.ProdutoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var movimentos []model.MovimentoEstoque
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&movimentos).Error
	return movimentos, total, err
}
