package router

import (
	"time"

	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/config"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/handler"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/middleware"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/repository"
	"github.com/joaogabriel43/gerenciador-pedidos-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categoriaSvc := service.NewCategoriaService(categoriaRepo, produtoRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo, produtoRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, categoriaRepo, fornecedorRepo, rdb)
	pedidoSvc := service.NewPedidoService(pedidoRepo, produtoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	precosH := handler.NewPrecosHandler(produtoRepo, rdb, time.Duration(cfg.PrecoCacheTTLMin)*time.Minute)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		categorias := api.Group("/categorias")
		{
			categorias.GET("", categoriasH.Listar)
			categorias.GET("/:id", categoriasH.BuscarPorID)
			categorias.POST("", categoriasH.Criar)
			categorias.PUT("/:id", categoriasH.Atualizar)
			categorias.DELETE("/:id", categoriasH.Deletar)
		}

		fornecedores := api.Group("/fornecedores")
		{
			fornecedores.GET("", fornecedoresH.Listar)
			fornecedores.GET("/:id", fornecedoresH.BuscarPorID)
			fornecedores.POST("", fornecedoresH.Criar)
			fornecedores.PUT("/:id", fornecedoresH.Atualizar)
			fornecedores.DELETE("/:id", fornecedoresH.Deletar)
		}

		produtos := api.Group("/produtos")
		{
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.BuscarPorID)
			produtos.GET("/:id/preco", precosH.BuscarPreco)
			produtos.POST("", produtosH.Criar)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Deletar)
		}

		pedidos := api.Group("/pedidos")
		{
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.BuscarPorID)
			pedidos.POST("", pedidosH.Criar)
			pedidos.PUT("/:id", pedidosH.Atualizar)
			pedidos.DELETE("/:id", pedidosH.Deletar)
		}
	}

	return r
}
