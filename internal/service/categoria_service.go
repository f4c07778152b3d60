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

// CategoriaService defines the business operations for categorias.
type CategoriaService interface {
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.CategoriaResponse, error)
	Criar(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type categoriaService struct {
	repo        repository.CategoriaRepository
	produtoRepo repository.ProdutoRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, produtoRepo repository.ProdutoRepository) CategoriaService {
	return &categoriaService{repo: repo, produtoRepo: produtoRepo}
}

func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{ID: c.ID, Nome: c.Nome}
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCategoria(c))
	}
	return result, nil
}

func (s *categoriaService) BuscarPorID(ctx context.Context, id uint) (*dto.CategoriaResponse, error) {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	nomeNormalizado := normalize.Nome(req.Nome)
	existente, err := s.repo.BuscarPorNomeNormalizado(ctx, nomeNormalizado)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.BusinessRule("Uma categoria com nome similar já existe: %s", existente.Nome)
	}

	c := &model.Categoria{Nome: req.Nome, NomeNormalizado: nomeNormalizado}
	if err := s.repo.Criar(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Atualizar(ctx context.Context, id uint, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}

	nomeNormalizado := normalize.Nome(req.Nome)
	existente, err := s.repo.BuscarPorNomeNormalizado(ctx, nomeNormalizado)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil && existente.ID != id {
		return nil, apierror.BusinessRule("Uma categoria com nome similar já existe: %s", existente.Nome)
	}

	c.Nome = req.Nome
	c.NomeNormalizado = nomeNormalizado
	if err := s.repo.Atualizar(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Deletar(ctx context.Context, id uint) error {
	c, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}

	vinculados, err := s.produtoRepo.ContarPorCategoria(ctx, id)
	if err != nil {
		return err
	}
	if vinculados > 0 {
		return apierror.BusinessRule("Não é possível excluir uma categoria que está sendo usada por produtos.")
	}

	return s.repo.Deletar(ctx, c)
}

func (s *categoriaService) buscar(ctx context.Context, id uint) (*model.Categoria, error) {
	c, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Categoria com ID %d não encontrada", id)
		}
		return nil, err
	}
	return c, nil
}
