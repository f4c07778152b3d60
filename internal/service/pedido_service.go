package service

import (
	"context"
	"errors"
	"time"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/apierror"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/model"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/repository"

	"gorm.io/gorm"
)

const formatoData = "2006-01-02"

// PedidoService defines the business operations for pedidos, including the
// association bookkeeping that keeps the pedido↔produto relation consistent
// on both sides.
type PedidoService interface {
	Listar(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.PedidoResponse, error)
	Criar(ctx context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarPedidoRequest) (*dto.PedidoResponse, error)
	Deletar(ctx context.Context, id uint) error
}

type pedidoService struct {
	repo        repository.PedidoRepository
	produtoRepo repository.ProdutoRepository
}

func NewPedidoService(repo repository.PedidoRepository, produtoRepo repository.ProdutoRepository) PedidoService {
	return &pedidoService{repo: repo, produtoRepo: produtoRepo}
}

func mapPedido(p model.Pedido) dto.PedidoResponse {
	produtos := make([]dto.ProdutoResponse, 0, len(p.Produtos))
	for _, produto := range p.Produtos {
		produtos = append(produtos, mapProduto(*produto))
	}
	var entrega *string
	if p.DataEntrega != nil {
		v := p.DataEntrega.Format(formatoData)
		entrega = &v
	}
	return dto.PedidoResponse{
		ID:          p.ID,
		Data:        p.Data.Format(formatoData),
		DataEntrega: entrega,
		Produtos:    produtos,
	}
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	list, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPedido(p))
	}
	return result, nil
}

func (s *pedidoService) BuscarPorID(ctx context.Context, id uint) (*dto.PedidoResponse, error) {
	p, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapPedido(*p)
	return &resp, nil
}

func (s *pedidoService) Criar(ctx context.Context, req dto.CriarPedidoRequest) (*dto.PedidoResponse, error) {
	if len(req.ProdutoIDs) == 0 {
		return nil, apierror.BusinessRule("Um pedido deve conter pelo menos um produto.")
	}

	produtos, faltantes, err := s.resolverProdutos(ctx, req.ProdutoIDs)
	if err != nil {
		return nil, err
	}
	if len(faltantes) > 0 {
		return nil, apierror.NotFound("Produto(s) com ID(s) %v não encontrado(s).", faltantes)
	}

	pedido := &model.Pedido{Data: hoje()}
	pedido.DefinirProdutos(produtos)

	if err := s.repo.Criar(ctx, pedido); err != nil {
		return nil, err
	}
	resp := mapPedido(*pedido)
	return &resp, nil
}

func (s *pedidoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}

	// Tri-state: nil and empty both mean "leave associations unchanged";
	// only a non-empty list triggers a full replacement.
	substituir := len(req.ProdutoIDs) > 0
	if substituir {
		produtos, faltantes, err := s.resolverProdutos(ctx, req.ProdutoIDs)
		if err != nil {
			return nil, err
		}
		if len(faltantes) > 0 {
			return nil, apierror.NotFound("Um ou mais produtos não foram encontrados.")
		}
		pedido.DefinirProdutos(produtos)
	}

	if req.DataEntrega != nil {
		entrega, err := time.Parse(formatoData, *req.DataEntrega)
		if err != nil {
			return nil, apierror.BusinessRule("Data de entrega inválida: %s", *req.DataEntrega)
		}
		pedido.DataEntrega = &entrega
	}

	if substituir {
		err = s.repo.SubstituirProdutos(ctx, pedido)
	} else {
		err = s.repo.Atualizar(ctx, pedido)
	}
	if err != nil {
		return nil, err
	}
	resp := mapPedido(*pedido)
	return &resp, nil
}

func (s *pedidoService) Deletar(ctx context.Context, id uint) error {
	pedido, err := s.buscar(ctx, id)
	if err != nil {
		return err
	}
	// Detach every product on both sides before deleting so no dangling
	// association survives in either direction.
	pedido.LimparProdutos()
	return s.repo.Deletar(ctx, pedido)
}

func (s *pedidoService) buscar(ctx context.Context, id uint) (*model.Pedido, error) {
	p, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Pedido com ID %d não encontrado", id)
		}
		return nil, err
	}
	return p, nil
}

// resolverProdutos fetches the requested products in one batch and reports the
// ids that could not be resolved, preserving the order of first occurrence.
func (s *pedidoService) resolverProdutos(ctx context.Context, ids []uint) ([]*model.Produto, []uint, error) {
	produtos, err := s.produtoRepo.BuscarPorIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	encontrados := make(map[uint]bool, len(produtos))
	for _, p := range produtos {
		encontrados[p.ID] = true
	}

	var faltantes []uint
	vistos := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if vistos[id] {
			continue
		}
		vistos[id] = true
		if !encontrados[id] {
			faltantes = append(faltantes, id)
		}
	}
	return produtos, faltantes, nil
}

func hoje() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
