package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/apierror"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/dto"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/repository"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// PrecosHandler serves the public price check endpoint: a read-only lookup of
// a product's name and price, cached in Redis. Product mutations evict the
// cache entry; the TTL bounds staleness if an eviction is lost.
type PrecosHandler struct {
	repo repository.ProdutoRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewPrecosHandler(repo repository.ProdutoRepository, rdb *redis.Client, ttl time.Duration) *PrecosHandler {
	return &PrecosHandler{repo: repo, rdb: rdb, ttl: ttl}
}

// BuscarPreco GET /api/produtos/:id/preco
func (h *PrecosHandler) BuscarPreco(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := service.PrecoCacheKey(id)

	// 1. Try the cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PrecoResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query the store
	produto, err := h.repo.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apierror.NotFound("Produto com ID %d não encontrado", id))
			return
		}
		respondError(c, err)
		return
	}

	resp := dto.PrecoResponse{ID: produto.ID, Nome: produto.Nome, Preco: produto.Preco}

	// 3. Populate the cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, h.ttl).Err()
	}

	c.JSON(http.StatusOK, resp)
}
