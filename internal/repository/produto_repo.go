package repository

import (
	"context"

	"estoquepos/internal/dto"
	"estoquepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	CreateTx(tx *gorm.DB, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error)
	ListAll(ctx context.Context) ([]model.Produto, error)
	UpdateTx(tx *gorm.DB, p *model.Produto) error

	// DecrementarSeDisponivelTx subtracts qtd from quantidade in one guarded
	// UPDATE. Returns false (and no mutation) when stock is insufficient.
	DecrementarSeDisponivelTx(tx *gorm.DB, id uuid.UUID, qtd int) (bool, error)

	// ZerarQuantidadesTx sets every product's quantidade to 0. Returns the
	// number of rows touched.
	ZerarQuantidadesTx(tx *gorm.DB) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) CreateTx(tx *gorm.DB, p *model.Produto) error {
	return tx.Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := tx.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&p).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{})
	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}
	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(offset).Find(&produtos).Error
	return produtos, total, err
}

func (r *produtoRepo) ListAll(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) UpdateTx(tx *gorm.DB, p *model.Produto) error {
	return tx.Save(p).Error
}

func (r *produtoRepo) DecrementarSeDisponivelTx(tx *gorm.DB, id uuid.UUID, qtd int) (bool, error) {
	res := tx.Model(&model.Produto{}).
		Where("id = ? AND quantidade >= ?", id, qtd).
		Update("quantidade", gorm.Expr("quantidade - ?", qtd))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *produtoRepo) ZerarQuantidadesTx(tx *gorm.DB) (int64, error) {
	res := tx.Model(&model.Produto{}).Where("quantidade <> 0").Update("quantidade", 0)
	return res.RowsAffected, res.Error
}

func (r *produtoRepo) DB() *gorm.DB { return r.db }
