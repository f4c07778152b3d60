package repository

import (
	"context"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository defines the data access contract for categorias.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type CategoriaRepository interface {
	Criar(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	BuscarPorID(ctx context.Context, id uint) (*model.Categoria, error)
	BuscarPorNomeNormalizado(ctx context.Context, nomeNormalizado string) (*model.Categoria, error)
	Atualizar(ctx context.Context, c *model.Categoria) error
	Deletar(ctx context.Context, c *model.Categoria) error
}

type categoriaRepository struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Criar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepository) Listar(ctx context.Context) ([]model.Categoria, error) {
	var list []model.Categoria
	err := r.db.WithContext(ctx).Order("nome asc").Find(&list).Error
	return list, err
}

func (r *categoriaRepository) BuscarPorID(ctx context.Context, id uint) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) BuscarPorNomeNormalizado(ctx context.Context, nomeNormalizado string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("nome_normalizado = ?", nomeNormalizado).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) Atualizar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepository) Deletar(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Delete(c).Error
}
