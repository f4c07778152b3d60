package repository

import (
	"context"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/model"

	"gorm.io/gorm"
)

// ProdutoRepository defines the data access contract for produtos, including
// the reference counts that back the categoria/fornecedor delete rules.
type ProdutoRepository interface {
	Criar(ctx context.Context, p *model.Produto) error
	Listar(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error)
	BuscarPorID(ctx context.Context, id uint) (*model.Produto, error)
	// BuscarPorIDs resolves a batch of ids in one query; ids absent from the
	// store are simply missing from the result.
	BuscarPorIDs(ctx context.Context, ids []uint) ([]*model.Produto, error)
	Atualizar(ctx context.Context, p *model.Produto) error
	// Deletar removes the product and its pedido_produto join rows in one
	// transaction, so no association dangles on either side.
	Deletar(ctx context.Context, p *model.Produto) error
	ContarPorCategoria(ctx context.Context, categoriaID uint) (int64, error)
	ContarPorFornecedor(ctx context.Context, fornecedorID uint) (int64, error)
}

type produtoRepository struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository {
	return &produtoRepository{db: db}
}

func (r *produtoRepository) Criar(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepository) Listar(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	q := r.db.WithContext(ctx).Model(&model.Produto{})

	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}
	if filter.PrecoMin != "" {
		q = q.Where("preco >= ?", filter.PrecoMin)
	}
	if filter.PrecoMax != "" {
		q = q.Where("preco <= ?", filter.PrecoMax)
	}
	if filter.CategoriaID != 0 {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}
	if filter.FornecedorID != 0 {
		q = q.Where("fornecedor_id = ?", filter.FornecedorID)
	}

	var produtos []model.Produto
	err := q.Order("nome asc").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepository) BuscarPorID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepository) BuscarPorIDs(ctx context.Context, ids []uint) ([]*model.Produto, error) {
	var produtos []*model.Produto
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepository) Atualizar(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepository) Deletar(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Association("Pedidos").Clear(); err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}

func (r *produtoRepository) ContarPorCategoria(ctx context.Context, categoriaID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).Where("categoria_id = ?", categoriaID).Count(&count).Error
	return count, err
}

func (r *produtoRepository) ContarPorFornecedor(ctx context.Context, fornecedorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).Where("fornecedor_id = ?", fornecedorID).Count(&count).Error
	return count, err
}
