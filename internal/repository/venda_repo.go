package repository

import (
	"context"

	"estoquepos/internal/dto"
	"estoquepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendaRepository interface {
	// CreateTx appends a sale inside the caller's transaction — sales are
	// only ever written together with the stock decrement and ledger entry.
	CreateTx(tx *gorm.DB, v *model.Venda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error)
	List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error)
	// ListForReport returns every sale (optionally filtered by product),
	// oldest first, with products preloaded.
	ListForReport(ctx context.Context, produtoID *uuid.UUID) ([]model.Venda, error)
	DB() *gorm.DB
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return tx.Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).Preload("Produto").First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vendaRepo) List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	var vendas []model.Venda
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venda{})
	if filter.ProdutoID != "" {
		q = q.Where("produto_id = ?", filter.ProdutoID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Produto").
		Order("data_venda DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&vendas).Error
	return vendas, total, err
}

func (r *vendaRepo) ListForReport(ctx context.Context, produtoID *uuid.UUID) ([]model.Venda, error) {
	var vendas []model.Venda
	q := r.db.WithContext(ctx).Preload("Produto").Order("data_venda ASC")
	if produtoID != nil {
		q = q.Where("produto_id = ?", *produtoID)
	}
	err := q.Find(&vendas).Error
	return vendas, err
}
