package tests

import (
	"context"
	"sort"
	"strings"
	"testing"

	"estoquepos/internal/dto"
	"estoquepos/internal/model"
	"estoquepos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. Services run with a nil *gorm.DB, which the
// transaction helper treats as "call the function directly" — so every Tx
// method here simply mutates the maps.

// ── stubProdutoRepo ───────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	return r.CreateTx(nil, p)
}

func (r *stubProdutoRepo) CreateTx(_ *gorm.DB, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProdutoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProdutoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.Codigo == codigo {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProdutoRepo) List(_ context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	all, _ := r.ListAll(context.Background())
	out := make([]model.Produto, 0, len(all))
	for _, p := range all {
		if filter.Nome != "" && !strings.Contains(strings.ToLower(p.Nome), strings.ToLower(filter.Nome)) {
			continue
		}
		if filter.Categoria != "" && p.Categoria != filter.Categoria {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProdutoRepo) ListAll(_ context.Context) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubProdutoRepo) UpdateTx(_ *gorm.DB, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) DecrementarSeDisponivelTx(_ *gorm.DB, id uuid.UUID, qtd int) (bool, error) {
	p, ok := r.produtos[id]
	if !ok || p.Quantidade < qtd {
		return false, nil
	}
	p.Quantidade -= qtd
	return true, nil
}

func (r *stubProdutoRepo) ZerarQuantidadesTx(_ *gorm.DB) (int64, error) {
	var n int64
	for _, p := range r.produtos {
		if p.Quantidade != 0 {
			p.Quantidade = 0
			n++
		}
	}
	return n, nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// seedProduto inserts a product with the given stock and price.
func seedProduto(r *stubProdutoRepo, codigo, nome string, quantidade int, valor float64) *model.Produto {
	p := &model.Produto{
		ID:            uuid.New(),
		Codigo:        codigo,
		Nome:          nome,
		Quantidade:    quantidade,
		ValorUnitario: decimal.NewFromFloat(valor),
		EstoqueMinimo: 1,
	}
	r.produtos[p.ID] = p
	return p
}

// ── stubVendaRepo ─────────────────────────────────────────────────────────────

type stubVendaRepo struct {
	vendas map[uuid.UUID]*model.Venda
	ordem  []uuid.UUID
	// resolve keeps product lookups working for preload-dependent reads
	produtoRepo *stubProdutoRepo
}

func newStubVendaRepo(produtoRepo *stubProdutoRepo) *stubVendaRepo {
	return &stubVendaRepo{
		vendas:      make(map[uuid.UUID]*model.Venda),
		produtoRepo: produtoRepo,
	}
}

func (r *stubVendaRepo) CreateTx(_ *gorm.DB, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vendas[v.ID] = v
	r.ordem = append(r.ordem, v.ID)
	return nil
}

func (r *stubVendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	if p, ok := r.produtoRepo.produtos[v.ProdutoID]; ok {
		pc := *p
		cp.Produto = &pc
	}
	return &cp, nil
}

func (r *stubVendaRepo) List(_ context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	all := r.snapshot()
	out := make([]model.Venda, 0, len(all))
	for _, v := range all {
		if filter.ProdutoID != "" && v.ProdutoID.String() != filter.ProdutoID {
			continue
		}
		out = append(out, v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVendaRepo) ListForReport(_ context.Context, produtoID *uuid.UUID) ([]model.Venda, error) {
	all := r.snapshot()
	out := make([]model.Venda, 0, len(all))
	for _, v := range all {
		if produtoID != nil && v.ProdutoID != *produtoID {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *stubVendaRepo) snapshot() []model.Venda {
	out := make([]model.Venda, 0, len(r.ordem))
	for _, id := range r.ordem {
		v := *r.vendas[id]
		if p, ok := r.produtoRepo.produtos[v.ProdutoID]; ok {
			pc := *p
			v.Produto = &pc
		}
		out = append(out, v)
	}
	return out
}

func (r *stubVendaRepo) DB() *gorm.DB { return nil }

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

// ── stubMovimentoRepo ─────────────────────────────────────────────────────────

type stubMovimentoRepo struct {
	movimentos []model.MovimentoEstoque
}

func (r *stubMovimentoRepo) CreateTx(_ *gorm.DB, m *model.MovimentoEstoque) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimentos = append(r.movimentos, *m)
	return nil
}

func (r *stubMovimentoRepo) List(_ context.Context, filter dto.MovimentoFilter) ([]model.MovimentoEstoque, int64, error) {
	out := make([]model.MovimentoEstoque, 0, len(r.movimentos))
	for _, m := range r.movimentos {
		if filter.ProdutoID != "" && m.ProdutoID.String() != filter.ProdutoID {
			continue
		}
		if filter.Tipo != "" && m.Tipo != filter.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

var _ repository.MovimentoEstoqueRepository = (*stubMovimentoRepo)(nil)

// ── stubUsuarioRepo ───────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if strings.EqualFold(u.Email, email) && u.Ativo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.usuarios)), nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", s, err)
	}
	return id
}
