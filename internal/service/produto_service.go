package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/apierror"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/model"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PrecoCacheKey builds the Redis key under which the public price check
// endpoint caches a product's price payload.
func PrecoCacheKey(id uint) string {
	return fmt.Sprintf("preco:%d", id)
}

// ProdutoService defines the business operations for produtos.
type ProdutoService interface {
	Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error)
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type produtoService struct {
	repo           repository.ProdutoRepository
	categoriaRepo  repository.CategoriaRepository
	fornecedorRepo repository.FornecedorRepository
	rdb            *redis.Client
}

func NewProdutoService(
	repo repository.ProdutoRepository,
	categoriaRepo repository.CategoriaRepository,
	fornecedorRepo repository.FornecedorRepository,
	rdb *redis.Client,
) ProdutoService {
	return &produtoService{repo: repo, categoriaRepo: categoriaRepo, fornecedorRepo: fornecedorRepo, rdb: rdb}
}

func mapProduto(p model.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		Preco:        p.Preco,
		CategoriaID:  p.CategoriaID,
		FornecedorID: p.FornecedorID,
	}
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error) {
	list, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapProduto(p))
	}
	return result, nil
}

func (s *produtoService) BuscarPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapProduto(*p)
	return &resp, nil
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if _, err := s.categoriaRepo.BuscarPorID(ctx, req.CategoriaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Categoria com ID %d não encontrada", req.CategoriaID)
		}
		return nil, err
	}
	if _, err := s.fornecedorRepo.BuscarPorID(ctx, req.FornecedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Fornecedor com ID %d não encontrado", req.FornecedorID)
		}
		return nil, err
	}

	p := &model.Produto{
		Nome:         req.Nome,
		Preco:        req.Preco,
		CategoriaID:  req.CategoriaID,
		FornecedorID: req.FornecedorID,
	}
	if err := s.repo.Criar(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduto(*p)
	return &resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}

	// Nome and preco are always overwritten; the references only when provided.
	p.Nome = req.Nome
	p.Preco = req.Preco

	if req.CategoriaID != nil {
		if _, err := s.categoriaRepo.BuscarPorID(ctx, *req.CategoriaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("Categoria com ID %d não encontrada", *req.CategoriaID)
			}
			return nil, err
		}
		p.CategoriaID = *req.CategoriaID
	}
	if req.FornecedorID != nil {
		if _, err := s.fornecedorRepo.BuscarPorID(ctx, *req.FornecedorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("Fornecedor com ID %d não encontrado", *req.FornecedorID)
			}
			return nil, err
		}
		p.FornecedorID = *req.FornecedorID
	}

	if err := s.repo.Atualizar(ctx, p); err != nil {
		return nil, err
	}
	s.invalidarPrecoCache(ctx, id)

	resp := mapProduto(*p)
	return &resp, nil
}

// Deletar removes the product unconditionally; there is no referential check
// against pedidos. The repository clears the join rows so the deletion never
// leaves a dangling association.
func (s *produtoService) Deletar(ctx context.Context, id uint) error {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Deletar(ctx, p); err != nil {
		return err
	}
	s.invalidarPrecoCache(ctx, id)
	return nil
}

func (s *produtoService) buscar(ctx context.Context, id uint) (*model.Produto, error) {
	p, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Produto com ID %d não encontrado", id)
		}
		return nil, err
	}
	return p, nil
}

// invalidarPrecoCache drops the cached price payload after a mutation.
// Best effort: a failed eviction only delays freshness until the TTL expires.
func (s *produtoService) invalidarPrecoCache(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, PrecoCacheKey(id)).Err(); err != nil {
		log.Warn().Err(err).Uint("produto_id", id).Msg("falha ao invalidar cache de preço")
	}
}
