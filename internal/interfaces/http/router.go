package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-ventas/internal/application/auth"
	"github.com/tu-usuario/almacen-ventas/internal/application/ledger"
	"github.com/tu-usuario/almacen-ventas/internal/application/reportes"
	"github.com/tu-usuario/almacen-ventas/internal/application/usecase"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	LedgerUC       *ledger.UseCase
	VentaUC        *usecase.VentaUseCase
	PDFUC          *reportes.PDFUseCase
	ProductoUC     *usecase.ProductoUseCase
	CatalogoUC     *usecase.CatalogoUseCase
	PromocionUC    *usecase.PromocionUseCase
	GastoUC        *usecase.GastoUseCase
	NotificacionUC *usecase.NotificacionUseCase
	JWTSecret      string
	CookieSecure   bool
	JWTExpMinutes  int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	soloAlmacen := RequireRole(entity.RolAlmacen)
	soloVendedor := RequireRole(entity.RolVendedor)

	// Auth (login y logout públicos)
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieSecure, deps.JWTExpMinutes)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (cookie de sesión o Bearer)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/registro", soloAlmacen, authHandler.Registrar)
	protected.Get("/auth/vendedores", soloAlmacen, authHandler.Vendedores)

	// Movimientos de stock (almacén)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	protected.Post("/entregas", soloAlmacen, ledgerHandler.Entregar)
	protected.Get("/entregas", ledgerHandler.Entregas)
	protected.Get("/transacciones", soloAlmacen, ledgerHandler.Transacciones)
	protected.Put("/stock/reducir", soloAlmacen, ledgerHandler.Reducir)
	protected.Put("/stock/parametros", soloAlmacen, ledgerHandler.ActualizarCantidades)
	protected.Get("/stock/:vendedorId", ledgerHandler.StockVendedor)
	protected.Get("/stock/:vendedorId/:productoId", ledgerHandler.StockDetalle)

	// Productos (escritura solo almacén)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	protected.Get("/productos", productoHandler.List)
	protected.Post("/productos", soloAlmacen, productoHandler.Crear)
	protected.Get("/productos/:id/resumen", soloAlmacen, ledgerHandler.ResumenProducto)
	protected.Get("/productos/:id", productoHandler.GetByID)
	protected.Put("/productos/:id", soloAlmacen, productoHandler.Actualizar)
	protected.Delete("/productos/:id", soloAlmacen, productoHandler.Eliminar)

	// Ventas (registra el vendedor; el reporte es del almacén)
	ventaHandler := NewVentaHandler(deps.LedgerUC, deps.VentaUC, deps.PDFUC)
	protected.Get("/ventas/reporte", soloAlmacen, ventaHandler.Reporte)
	protected.Post("/ventas", soloVendedor, ventaHandler.Crear)
	protected.Get("/ventas", ventaHandler.List)
	protected.Delete("/ventas/:id", ventaHandler.Anular)

	// Catálogo (escritura solo almacén)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	protected.Get("/secciones", catalogoHandler.ListSecciones)
	protected.Post("/secciones", soloAlmacen, catalogoHandler.CrearSeccion)
	protected.Delete("/secciones/:id", soloAlmacen, catalogoHandler.EliminarSeccion)
	protected.Get("/secciones/:id/subsecciones", catalogoHandler.ListSubsecciones)
	protected.Post("/secciones/:id/subsecciones", soloAlmacen, catalogoHandler.CrearSubseccion)
	protected.Delete("/subsecciones/:id", soloAlmacen, catalogoHandler.EliminarSubseccion)

	// Promociones (escritura solo almacén)
	promocionHandler := NewPromocionHandler(deps.PromocionUC)
	protected.Get("/promociones", promocionHandler.List)
	protected.Post("/promociones", soloAlmacen, promocionHandler.Crear)
	protected.Delete("/promociones/:id", soloAlmacen, promocionHandler.Eliminar)

	// Gastos (cada vendedor los suyos; el almacén todos)
	gastoHandler := NewGastoHandler(deps.GastoUC)
	protected.Get("/gastos", gastoHandler.List)
	protected.Post("/gastos", gastoHandler.Crear)

	// Notificaciones (solo almacén)
	notificacionHandler := NewNotificacionHandler(deps.NotificacionUC)
	protected.Get("/notificaciones", soloAlmacen, notificacionHandler.List)
	protected.Post("/notificaciones", soloAlmacen, notificacionHandler.Crear)
	protected.Put("/notificaciones/:id/leida", soloAlmacen, notificacionHandler.MarcarLeida)
	protected.Delete("/notificaciones", soloAlmacen, notificacionHandler.EliminarLote)
}
