package repository

import (
	"context"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/model"

	"gorm.io/gorm"
)

// PedidoRepository defines the data access contract for pedidos. The
// pedido_produto join table is the single source of truth for the
// many-to-many relation; every mutation that touches it runs inside one
// transaction so entity writes and association writes commit together.
type PedidoRepository interface {
	// Criar persists the order and its product associations atomically.
	Criar(ctx context.Context, p *model.Pedido) error
	// Listar eager-loads associated products to avoid a round trip per order.
	Listar(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error)
	BuscarPorID(ctx context.Context, id uint) (*model.Pedido, error)
	// Atualizar saves scalar fields only; associations are left untouched.
	Atualizar(ctx context.Context, p *model.Pedido) error
	// SubstituirProdutos saves scalar fields and replaces the association set
	// with p.Produtos, atomically.
	SubstituirProdutos(ctx context.Context, p *model.Pedido) error
	// Deletar clears the association set, then deletes the order, atomically.
	Deletar(ctx context.Context, p *model.Pedido) error
}

type pedidoRepository struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

func (r *pedidoRepository) Criar(ctx context.Context, p *model.Pedido) error {
	// GORM inserts the pedido and its join rows in a single transaction.
	// Omit(...Produtos.*) prevents re-saving the associated products themselves.
	return r.db.WithContext(ctx).Omit("Produtos.*").Create(p).Error
}

func (r *pedidoRepository) Listar(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	q := r.db.WithContext(ctx).Model(&model.Pedido{}).Preload("Produtos")

	switch filter.Entregue {
	case "true":
		q = q.Where("data_entrega IS NOT NULL")
	case "false":
		q = q.Where("data_entrega IS NULL")
	}
	if filter.DataInicio != "" {
		q = q.Where("data >= ?", filter.DataInicio)
	}
	if filter.DataFim != "" {
		q = q.Where("data <= ?", filter.DataFim)
	}

	var pedidos []model.Pedido
	err := q.Order("id asc").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepository) BuscarPorID(ctx context.Context, id uint) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Produtos").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepository) Atualizar(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Omit("Produtos").Save(p).Error
}

func (r *pedidoRepository) SubstituirProdutos(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Produtos").Save(p).Error; err != nil {
			return err
		}
		return tx.Model(p).Omit("Produtos.*").Association("Produtos").Replace(p.Produtos)
	})
}

func (r *pedidoRepository) Deletar(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(p).Association("Produtos").Clear(); err != nil {
			return err
		}
		return tx.Delete(p).Error
	})
}
