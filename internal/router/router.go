package router

import (
	"time"

	"github.com/allansomensi/printer-supplies-api/internal/config"
	"github.com/allansomensi/printer-supplies-api/internal/handler"
	"github.com/allansomensi/printer-supplies-api/internal/middleware"
	"github.com/allansomensi/printer-supplies-api/internal/repository"
	"github.com/allansomensi/printer-supplies-api/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

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
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	supplyRepo := repository.NewSupplyItemRepository(db)
	printerRepo := repository.NewPrinterRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	movementRepo := repository.NewMovementRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	ledgerSvc := service.NewLedgerService(supplyRepo, printerRepo, movementRepo, rdb, cfg.LedgerMaxRetries)
	supplySvc := service.NewSupplyService(supplyRepo, ledgerSvc)
	printerSvc := service.NewPrinterService(printerRepo, ledgerSvc)
	brandSvc := service.NewBrandService(brandRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	suppliesH := handler.NewSuppliesHandler(supplySvc, ledgerSvc)
	printersH := handler.NewPrintersHandler(printerSvc)
	brandsH := handler.NewBrandsHandler(brandSvc)
	movementsH := handler.NewMovementsHandler(ledgerSvc)
	statusH := handler.NewStatusHandler(db)
	stockCheckH := handler.NewStockCheckHandler(supplyRepo, rdb, time.Duration(cfg.StockCacheTTLSeconds)*time.Second)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/status", statusH.Show)

		// Quick stock check, cached, no side effects
		v1.GET("/stock/:id", stockCheckH.GetStockByID)

		// Stock ledger: movements are append-only, so no PUT / DELETE here.
		v1.POST("/movements", movementsH.Create)
		v1.GET("/movements", movementsH.List)
		v1.GET("/movements/count", movementsH.Count)

		supplies := v1.Group("/supplies")
		{
			supplies.POST("", suppliesH.Create)
			supplies.GET("", suppliesH.List)
			supplies.GET("/:id", suppliesH.GetByID)
			supplies.GET("/:id/stock", suppliesH.GetStock)
			supplies.PUT("/:id", suppliesH.Update)
			supplies.DELETE("/:id", suppliesH.Delete)
		}

		printers := v1.Group("/printers")
		{
			printers.POST("", printersH.Create)
			printers.GET("", printersH.List)
			printers.GET("/:id", printersH.GetByID)
			printers.PUT("/:id", printersH.Update)
			printers.DELETE("/:id", printersH.Delete)
		}

		brands := v1.Group("/brands")
		{
			brands.POST("", brandsH.Create)
			brands.GET("", brandsH.List)
			brands.GET("/:id", brandsH.GetByID)
			brands.PUT("/:id", brandsH.Update)
			brands.DELETE("/:id", brandsH.Delete)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
