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
	_ "github.com/tu-usuario/almacen-ventas/docs"
	"github.com/tu-usuario/almacen-ventas/internal/application/auth"
	"github.com/tu-usuario/almacen-ventas/internal/application/ledger"
	"github.com/tu-usuario/almacen-ventas/internal/application/reportes"
	"github.com/tu-usuario/almacen-ventas/internal/application/usecase"
	infrapdf "github.com/tu-usuario/almacen-ventas/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-ventas/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-ventas/internal/interfaces/http"
	"github.com/tu-usuario/almacen-ventas/pkg/config"
	"github.com/tu-usuario/almacen-ventas/pkg/logger"
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

	productoRepo := postgres.NewProductoRepository(pool)
	stockRepo := postgres.NewStockVendedorRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	seccionRepo := postgres.NewSeccionRepository(pool)
	promocionRepo := postgres.NewPromocionRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	notificacionRepo := postgres.NewNotificacionRepository(pool)
	entregaRepo := postgres.NewEntregaRepository(pool)
	transaccionRepo := postgres.NewTransaccionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewUseCase(txRunner, productoRepo, stockRepo, promocionRepo, entregaRepo, transaccionRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ventaUC := usecase.NewVentaUseCase(ventaRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, stockRepo)
	catalogoUC := usecase.NewCatalogoUseCase(seccionRepo)
	promocionUC := usecase.NewPromocionUseCase(promocionRepo, productoRepo)
	gastoUC := usecase.NewGastoUseCase(gastoRepo)
	notificacionUC := usecase.NewNotificacionUseCase(notificacionRepo)

	// PDF: reporte de ventas por rango de fechas
	pdfGenerator := infrapdf.NewMarotoReporteGenerator()
	pdfUC := reportes.NewPDFUseCase(ventaRepo, productoRepo, pdfGenerator)

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
		Title:    "Almacén Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		LedgerUC:       ledgerUC,
		VentaUC:        ventaUC,
		PDFUC:          pdfUC,
		ProductoUC:     productoUC,
		CatalogoUC:     catalogoUC,
		PromocionUC:    promocionUC,
		GastoUC:        gastoUC,
		NotificacionUC: notificacionUC,
		JWTSecret:      cfg.JWT.Secret,
		CookieSecure:   cfg.JWT.CookieSecure,
		JWTExpMinutes:  cfg.JWT.Expiration,
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
}
