package router

import (
	"time"

	"estoquepos/internal/config"
	"estoquepos/internal/handler"
	"estoquepos/internal/infra"
	"estoquepos/internal/middleware"
	"estoquepos/internal/repository"
	"estoquepos/internal/service"
	"estoquepos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine plus the
// worker handlers for the async pool.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *worker.Handlers) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	movimentoRepo := repository.NewMovimentoEstoqueRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, rdb, cfg)
	produtoSvc := service.NewProdutoService(produtoRepo, movimentoRepo, cfg.CatalogPartialUpdate)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, movimentoRepo, dispatcher)
	caixaSvc := service.NewCaixaService(produtoRepo)
	relatorioSvc := service.NewRelatorioService(vendaRepo, produtoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	movimentosH := handler.NewMovimentosHandler(movimentoRepo)
	caixaH := handler.NewCaixaHandler(caixaSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Registrar)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, rdb)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)

		prods := v1.Group("/produtos")
		{
			prods.POST("", produtosH.Criar)
			prods.GET("", produtosH.Listar)
			prods.GET("/:id", produtosH.ObterPorID)
			prods.PUT("/:id", produtosH.Atualizar)
		}

		vendas := v1.Group("/vendas")
		{
			vendas.POST("", vendasH.RegistrarVenda)
			vendas.GET("", vendasH.Listar)
			vendas.GET("/:id/recibo", vendasH.DownloadRecibo)
		}

		v1.GET("/movimentos", movimentosH.Listar)
		v1.POST("/caixa/fechar", caixaH.Fechar)

		rel := v1.Group("/relatorios")
		{
			rel.GET("/vendas", relatoriosH.Vendas)
			rel.GET("/vendas/pdf", relatoriosH.VendasPDF)
			rel.GET("/estoque", relatoriosH.Estoque)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	workerHandlers := &worker.Handlers{
		Email: worker.NewEmailWorker(vendaRepo, mailer, cfg.PDFStoragePath),
	}

	return r, workerHandlers
}
