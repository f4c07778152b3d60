package repository

import (
	"context"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/model"

	"gorm.io/gorm"
)

// FornecedorRepository defines the data access contract for fornecedores.
type FornecedorRepository interface {
	Criar(ctx context.Context, f *model.Fornecedor) error
	Listar(ctx context.Context) ([]model.Fornecedor, error)
	BuscarPorID(ctx context.Context, id uint) (*model.Fornecedor, error)
	BuscarPorNomeNormalizado(ctx context.Context, nomeNormalizado string) (*model.Fornecedor, error)
	Atualizar(ctx context.Context, f *model.Fornecedor) error
	Deletar(ctx context.Context, f *model.Fornecedor) error
}

type fornecedorRepository struct{ db *gorm.DB }

func NewFornecedorRepository(db *gorm.DB) FornecedorRepository {
	return &fornecedorRepository{db: db}
}

func (r *fornecedorRepository) Criar(ctx context.Context, f *model.Fornecedor) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fornecedorRepository) Listar(ctx context.Context) ([]model.Fornecedor, error) {
	var list []model.Fornecedor
	err := r.db.WithContext(ctx).Order("nome asc").Find(&list).Error
	return list, err
}

func (r *fornecedorRepository) BuscarPorID(ctx context.Context, id uint) (*model.Fornecedor, error) {
	var f model.Fornecedor
	err := r.db.WithContext(ctx).First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fornecedorRepository) BuscarPorNomeNormalizado(ctx context.Context, nomeNormalizado string) (*model.Fornecedor, error) {
	var f model.Fornecedor
	err := r.db.WithContext(ctx).Where("nome_normalizado = ?", nomeNormalizado).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fornecedorRepository) Atualizar(ctx context.Context, f *model.Fornecedor) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *fornecedorRepository) Deletar(ctx context.Context, f *model.Fornecedor) error {
	return r.db.WithContext(ctx).Delete(f).Error
}
