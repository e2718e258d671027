package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/veth14/hotel-backoffice-api/internal/application/auth"
	"github.com/veth14/hotel-backoffice-api/internal/application/inventory"
	"github.com/veth14/hotel-backoffice-api/internal/application/procurement"
	"github.com/veth14/hotel-backoffice-api/internal/application/requisition"
	"github.com/veth14/hotel-backoffice-api/internal/application/usecase"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	infrapdf "github.com/veth14/hotel-backoffice-api/internal/infrastructure/pdf"
	"github.com/veth14/hotel-backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/veth14/hotel-backoffice-api/internal/interfaces/http"
	"github.com/veth14/hotel-backoffice-api/pkg/config"
	"github.com/veth14/hotel-backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	channel := cfg.Inventory.ListenChannel
	itemRepo := postgres.NewItemRepository(pool, channel)
	itemWatcher := postgres.NewItemWatcher(pool, channel)
	ledgerRepo := postgres.NewStockTransactionRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	requisitionRepo := postgres.NewRequisitionRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool, channel)

	cacheTTL := time.Duration(cfg.Inventory.CacheTTLMinutes) * time.Minute
	itemCache := inventory.NewItemCache(itemRepo, cacheTTL)
	itemSync := inventory.NewItemSync(itemWatcher, itemRepo, itemCache, log)

	// Suscripción viva durante toda la sesión del proceso: mantiene la caché
	// caliente mientras LISTEN/NOTIFY entregue cambios.
	syncCtx, cancelSync := context.WithCancel(ctx)
	unsubscribe, err := itemSync.Subscribe(syncCtx,
		func(items []entity.InventoryItem) {
			log.Info().Int("items", len(items)).Msg("inventario sincronizado")
		},
		func(err error) {
			log.Error().Err(err).Msg("sincronización de inventario")
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir suscripción de inventario")
	}
	defer cancelSync()
	defer unsubscribe()

	itemUC := inventory.NewItemUseCase(itemCache, itemRepo, ledgerRepo, txRunner)
	orderUC := procurement.NewOrderUseCase(orderRepo, supplierRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	orderPDFUC := procurement.NewPDFUseCase(orderRepo, supplierRepo, pdfGenerator)
	requisitionUC := requisition.NewUseCase(requisitionRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hotel Back-Office API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:        itemUC,
		OrderUC:       orderUC,
		OrderPDFUC:    orderPDFUC,
		RequisitionUC: requisitionUC,
		SupplierUC:    supplierUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
