package service

import (
	"context"
	"errors"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/apierror"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/model"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/normalize"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/repository"

	"gorm.io/gorm"
)

// FornecedorService defines the business operations for fornecedores. Same
// shape as CategoriaService, operating on the produto→fornecedor reference
// count for the delete rule.
type FornecedorService interface {
	Listar(ctx context.Context) ([]dto.FornecedorResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.FornecedorResponse, error)
	Criar(ctx context.Context, req dto.FornecedorRequest) (*dto.FornecedorResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.FornecedorRequest) (*dto.FornecedorResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type fornecedorService struct {
	repo        repository.FornecedorRepository
	produtoRepo repository.ProdutoRepository
}

func NewFornecedorService(repo repository.FornecedorRepository, produtoRepo repository.ProdutoRepository) FornecedorService {
	return &fornecedorService{repo: repo, produtoRepo: produtoRepo}
}

func mapFornecedor(f model.Fornecedor) dto.FornecedorResponse {
	return dto.FornecedorResponse{ID: f.ID, Nome: f.Nome}
}

func (s *fornecedorService) Listar(ctx context.Context) ([]dto.FornecedorResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.FornecedorResponse, 0, len(list))
	for _, f := range list {
		result = append(result, mapFornecedor(f))
	}
	return result, nil
}

func (s *fornecedorService) BuscarPorID(ctx context.Context, id uint) (*dto.FornecedorResponse, error) {
	f, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapFornecedor(*f)
	return &resp, nil
}

func (s *fornecedorService) Criar(ctx context.Context, req dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	nomeNormalizado := normalize.Nome(req.Nome)
	existente, err := s.repo.BuscarPorNomeNormalizado(ctx, nomeNormalizado)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.BusinessRule("Um fornecedor com nome similar já existe: %s", existente.Nome)
	}

	f := &model.Fornecedor{Nome: req.Nome, NomeNormalizado: nomeNormalizado}
	if err := s.repo.Criar(ctx, f); err != nil {
		return nil, err
	}
	resp := mapFornecedor(*f)
	return &resp, nil
}

func (s *fornecedorService) Atualizar(ctx context.Context, id uint, req dto.FornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}

	// The duplicate check applies on update as well, mirroring Categoria.
	nomeNormalizado := normalize.Nome(req.Nome)
	existente, err := s.repo.BuscarPorNomeNormalizado(ctx, nomeNormalizado)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil && existente.ID != id {
		return nil, apierror.BusinessRule("Um fornecedor com nome similar já existe: %s", existente.Nome)
	}

	f.Nome = req.Nome
	f.NomeNormalizado = nomeNormalizado
	if err := s.repo.Atualizar(ctx, f); err != nil {
		return nil, err
	}
	resp := mapFornecedor(*f)
	return &resp, nil
}

func (s *fornecedorService) Deletar(ctx context.Context, id uint) error {
	f, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}

	vinculados, err := s.produtoRepo.ContarPorFornecedor(ctx, id)
	if err != nil {
		return err
	}
	if vinculados > 0 {
		return apierror.BusinessRule("Não é possível excluir um fornecedor que está sendo usado por produtos.")
	}

	return s.repo.Deletar(ctx, f)
}

func (s *fornecedorService) buscar(ctx context.Context, id uint) (*model.Fornecedor, error) {
	f, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Fornecedor com ID %d não encontrado", id)
		}
		return nil, err
	}
	return f, nil
}
