package service

import (
	"context"
	"sort"
	"strings"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/model"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory CategoriaRepository stub ───────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uint]*model.Categoria
	nextID     uint
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uint]*model.Categoria), nextID: 1}
}

func (r *stubCategoriaRepo) Criar(_ context.Context, c *model.Categoria) error {
	c.ID = r.nextID
	r.nextID++
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context) ([]model.Categoria, error) {
	result := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nome < result[j].Nome })
	return result, nil
}

func (r *stubCategoriaRepo) BuscarPorID(_ context.Context, id uint) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoriaRepo) BuscarPorNomeNormalizado(_ context.Context, nomeNormalizado string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.NomeNormalizado == nomeNormalizado {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoriaRepo) Atualizar(_ context.Context, c *model.Categoria) error {
	r.categorias[c.ID] = c
	return nil
}

func (r *stubCategoriaRepo) Deletar(_ context.Context, c *model.Categoria) error {
	delete(r.categorias, c.ID)
	return nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── In-memory FornecedorRepository stub ──────────────────────────────────────

type stubFornecedorRepo struct {
	fornecedores map[uint]*model.Fornecedor
	nextID       uint
}

func newStubFornecedorRepo() *stubFornecedorRepo {
	return &stubFornecedorRepo{fornecedores: make(map[uint]*model.Fornecedor), nextID: 1}
}

func (r *stubFornecedorRepo) Criar(_ context.Context, f *model.Fornecedor) error {
	f.ID = r.nextID
	r.nextID++
	r.fornecedores[f.ID] = f
	return nil
}

func (r *stubFornecedorRepo) Listar(_ context.Context) ([]model.Fornecedor, error) {
	result := make([]model.Fornecedor, 0, len(r.fornecedores))
	for _, f := range r.fornecedores {
		result = append(result, *f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nome < result[j].Nome })
	return result, nil
}

func (r *stubFornecedorRepo) BuscarPorID(_ context.Context, id uint) (*model.Fornecedor, error) {
	f, ok := r.fornecedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFornecedorRepo) BuscarPorNomeNormalizado(_ context.Context, nomeNormalizado string) (*model.Fornecedor, error) {
	for _, f := range r.fornecedores {
		if f.NomeNormalizado == nomeNormalizado {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubFornecedorRepo) Atualizar(_ context.Context, f *model.Fornecedor) error {
	r.fornecedores[f.ID] = f
	return nil
}

func (r *stubFornecedorRepo) Deletar(_ context.Context, f *model.Fornecedor) error {
	delete(r.fornecedores, f.ID)
	return nil
}

var _ repository.FornecedorRepository = (*stubFornecedorRepo)(nil)

// ── In-memory ProdutoRepository stub ─────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uint]*model.Produto
	nextID   uint
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uint]*model.Produto), nextID: 1}
}

func (r *stubProdutoRepo) Criar(_ context.Context, p *model.Produto) error {
	p.ID = r.nextID
	r.nextID++
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Listar(_ context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	var result []model.Produto
	for _, p := range r.produtos {
		if filter.Nome != "" && !strings.Contains(strings.ToLower(p.Nome), strings.ToLower(filter.Nome)) {
			continue
		}
		if filter.PrecoMin != "" {
			min, err := decimal.NewFromString(filter.PrecoMin)
			if err == nil && p.Preco.LessThan(min) {
				continue
			}
		}
		if filter.PrecoMax != "" {
			max, err := decimal.NewFromString(filter.PrecoMax)
			if err == nil && p.Preco.GreaterThan(max) {
				continue
			}
		}
		if filter.CategoriaID != 0 && p.CategoriaID != filter.CategoriaID {
			continue
		}
		if filter.FornecedorID != 0 && p.FornecedorID != filter.FornecedorID {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Nome < result[j].Nome })
	return result, nil
}

func (r *stubProdutoRepo) BuscarPorID(_ context.Context, id uint) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) BuscarPorIDs(_ context.Context, ids []uint) ([]*model.Produto, error) {
	var result []*model.Produto
	vistos := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if vistos[id] {
			continue
		}
		vistos[id] = true
		if p, ok := r.produtos[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *stubProdutoRepo) Atualizar(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Deletar(_ context.Context, p *model.Produto) error {
	// Mirror the real repository: join rows vanish with the product, so the
	// reverse side must not keep pointing at it.
	for _, pedido := range append([]*model.Pedido(nil), p.Pedidos...) {
		pedido.RemoverProduto(p)
	}
	delete(r.produtos, p.ID)
	return nil
}

func (r *stubProdutoRepo) ContarPorCategoria(_ context.Context, categoriaID uint) (int64, error) {
	var count int64
	for _, p := range r.produtos {
		if p.CategoriaID == categoriaID {
			count++
		}
	}
	return count, nil
}

func (r *stubProdutoRepo) ContarPorFornecedor(_ context.Context, fornecedorID uint) (int64, error) {
	var count int64
	for _, p := range r.produtos {
		if p.FornecedorID == fornecedorID {
			count++
		}
	}
	return count, nil
}

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── In-memory PedidoRepository stub ──────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uint]*model.Pedido
	nextID  uint
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uint]*model.Pedido), nextID: 1}
}

func (r *stubPedidoRepo) Criar(_ context.Context, p *model.Pedido) error {
	p.ID = r.nextID
	r.nextID++
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) Listar(_ context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	var result []model.Pedido
	for _, p := range r.pedidos {
		switch filter.Entregue {
		case "true":
			if p.DataEntrega == nil {
				continue
			}
		case "false":
			if p.DataEntrega != nil {
				continue
			}
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *stubPedidoRepo) BuscarPorID(_ context.Context, id uint) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPedidoRepo) Atualizar(_ context.Context, p *model.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) SubstituirProdutos(_ context.Context, p *model.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

func (r *stubPedidoRepo) Deletar(_ context.Context, p *model.Pedido) error {
	delete(r.pedidos, p.ID)
	return nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedCategoria(repo *stubCategoriaRepo, nome, nomeNormalizado string) *model.Categoria {
	c := &model.Categoria{ID: repo.nextID, Nome: nome, NomeNormalizado: nomeNormalizado}
	repo.nextID++
	repo.categorias[c.ID] = c
	return c
}

func seedFornecedor(repo *stubFornecedorRepo, nome, nomeNormalizado string) *model.Fornecedor {
	f := &model.Fornecedor{ID: repo.nextID, Nome: nome, NomeNormalizado: nomeNormalizado}
	repo.nextID++
	repo.fornecedores[f.ID] = f
	return f
}

func seedProduto(repo *stubProdutoRepo, nome string, preco float64, categoriaID, fornecedorID uint) *model.Produto {
	p := &model.Produto{
		ID:           repo.nextID,
		Nome:         nome,
		Preco:        decimal.NewFromFloat(preco),
		CategoriaID:  categoriaID,
		FornecedorID: fornecedorID,
	}
	repo.nextID++
	repo.produtos[p.ID] = p
	return p
}
