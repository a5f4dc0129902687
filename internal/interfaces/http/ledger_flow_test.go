package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-ventas/internal/application/ledger"
	"github.com/tu-usuario/almacen-ventas/internal/application/usecase"
	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
	apphttp "github.com/tu-usuario/almacen-ventas/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para ejercitar los flujos HTTP completos (handler → usecase).
// Sin emulación de rollback: la atomicidad se prueba en el paquete ledger.
// ──────────────────────────────────────────────────────────────────────────────

type claveFlujo struct {
	vendedorID, productoID int64
}

type memoriaFlujo struct {
	productos     map[int64]*entity.Producto
	stocks        map[claveFlujo]*entity.StockVendedor
	entregas      []*entity.Entrega
	transacciones []*entity.Transaccion
	ventas        map[int64]*entity.Venta
	nextID        int64
}

func nuevaMemoriaFlujo() *memoriaFlujo {
	return &memoriaFlujo{
		productos: make(map[int64]*entity.Producto),
		stocks:    make(map[claveFlujo]*entity.StockVendedor),
		ventas:    make(map[int64]*entity.Venta),
	}
}

func (m *memoriaFlujo) siguienteID() int64 {
	m.nextID++
	return m.nextID
}

type flujoProductoRepo struct{ mem *memoriaFlujo }

func (r *flujoProductoRepo) Create(p *entity.Producto) error {
	p.ID = r.mem.siguienteID()
	r.mem.productos[p.ID] = p
	return nil
}

func (r *flujoProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	return r.mem.productos[id], nil
}

func (r *flujoProductoRepo) GetByNombre(string) (*entity.Producto, error) { return nil, nil }

func (r *flujoProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	return r.mem.productos[id], nil
}

func (r *flujoProductoRepo) List(repository.FiltroProductos) ([]*entity.Producto, error) {
	return nil, nil
}

func (r *flujoProductoRepo) Update(p *entity.Producto) error {
	r.mem.productos[p.ID] = p
	return nil
}

func (r *flujoProductoRepo) UpdateCantidadAlmacen(id int64, cantidad int) error {
	r.mem.productos[id].CantidadAlmacen = cantidad
	return nil
}

func (r *flujoProductoRepo) Delete(id int64) error {
	delete(r.mem.productos, id)
	return nil
}

type flujoStockRepo struct{ mem *memoriaFlujo }

func (r *flujoStockRepo) Get(vendedorID, productoID int64) (*entity.StockVendedor, error) {
	return r.mem.stocks[claveFlujo{vendedorID, productoID}], nil
}

func (r *flujoStockRepo) GetForUpdate(vendedorID, productoID int64) (*entity.StockVendedor, error) {
	return r.Get(vendedorID, productoID)
}

func (r *flujoStockRepo) Upsert(s *entity.StockVendedor) error {
	cs := *s
	r.mem.stocks[claveFlujo{s.VendedorID, s.ProductoID}] = &cs
	return nil
}

func (r *flujoStockRepo) ListByVendedor(vendedorID int64) ([]*entity.StockVendedor, error) {
	var out []*entity.StockVendedor
	for k, s := range r.mem.stocks {
		if k.vendedorID == vendedorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *flujoStockRepo) ListByProductoIDs(vendedorID int64, productoIDs []int64) ([]*entity.StockVendedor, error) {
	var out []*entity.StockVendedor
	for _, id := range productoIDs {
		if s, ok := r.mem.stocks[claveFlujo{vendedorID, id}]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *flujoStockRepo) SumByProducto(productoID int64) (int, error) {
	total := 0
	for k, s := range r.mem.stocks {
		if k.productoID == productoID {
			total += s.Cantidad
		}
	}
	return total, nil
}

func (r *flujoStockRepo) ListParametros(int64, int64) ([]*entity.ParametroStock, error) {
	return nil, nil
}

func (r *flujoStockRepo) ListParametrosForUpdate(int64, int64) ([]*entity.ParametroStock, error) {
	return nil, nil
}

func (r *flujoStockRepo) UpsertParametro(*entity.ParametroStock) error { return nil }

func (r *flujoStockRepo) DeleteParametros(int64, int64) error { return nil }

type flujoEntregaRepo struct{ mem *memoriaFlujo }

func (r *flujoEntregaRepo) Create(e *entity.Entrega) error {
	e.ID = r.mem.siguienteID()
	ce := *e
	r.mem.entregas = append(r.mem.entregas, &ce)
	return nil
}

func (r *flujoEntregaRepo) ListByVendedor(vendedorID int64, _, _ *time.Time, _, _ int) ([]*entity.Entrega, error) {
	var out []*entity.Entrega
	for _, e := range r.mem.entregas {
		if e.VendedorID == vendedorID {
			out = append(out, e)
		}
	}
	return out, nil
}

type flujoTransaccionRepo struct{ mem *memoriaFlujo }

func (r *flujoTransaccionRepo) Create(t *entity.Transaccion) error {
	t.ID = r.mem.siguienteID()
	ct := *t
	r.mem.transacciones = append(r.mem.transacciones, &ct)
	return nil
}

func (r *flujoTransaccionRepo) ListByProducto(productoID int64, _, _ *time.Time, _, _ int) ([]*entity.Transaccion, error) {
	var out []*entity.Transaccion
	for _, t := range r.mem.transacciones {
		if t.ProductoID == productoID {
			out = append(out, t)
		}
	}
	return out, nil
}

type flujoVentaRepo struct{ mem *memoriaFlujo }

func (r *flujoVentaRepo) Create(v *entity.Venta) error {
	v.ID = r.mem.siguienteID()
	cv := *v
	r.mem.ventas[v.ID] = &cv
	return nil
}

func (r *flujoVentaRepo) GetByIDAndVendedor(id, vendedorID int64) (*entity.Venta, error) {
	v, ok := r.mem.ventas[id]
	if !ok || v.VendedorID != vendedorID {
		return nil, nil
	}
	return v, nil
}

func (r *flujoVentaRepo) Delete(id int64) error {
	delete(r.mem.ventas, id)
	return nil
}

func (r *flujoVentaRepo) List(filtro repository.FiltroVentas) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.mem.ventas {
		if filtro.VendedorID != nil && v.VendedorID != *filtro.VendedorID {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

type flujoPromocionRepo struct{}

func (r *flujoPromocionRepo) Create(*entity.Promocion) error          { return nil }
func (r *flujoPromocionRepo) List() ([]*entity.Promocion, error)      { return nil, nil }
func (r *flujoPromocionRepo) Delete(int64) error                      { return nil }
func (r *flujoPromocionRepo) GetActivaByProducto(int64, time.Time) (*entity.Promocion, error) {
	return nil, nil
}

type flujoTxRunner struct{ mem *memoriaFlujo }

func (tx *flujoTxRunner) Run(_ context.Context, fn func(
	productoRepo repository.ProductoRepository,
	stockRepo repository.StockVendedorRepository,
	entregaRepo repository.EntregaRepository,
	transaccionRepo repository.TransaccionRepository,
	ventaRepo repository.VentaRepository,
) error) error {
	return fn(
		&flujoProductoRepo{mem: tx.mem},
		&flujoStockRepo{mem: tx.mem},
		&flujoEntregaRepo{mem: tx.mem},
		&flujoTransaccionRepo{mem: tx.mem},
		&flujoVentaRepo{mem: tx.mem},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture de aplicación
// ──────────────────────────────────────────────────────────────────────────────

func nuevaAppFlujo(t *testing.T) (*fiber.App, *memoriaFlujo) {
	t.Helper()
	mem := nuevaMemoriaFlujo()
	ledgerUC := ledger.NewUseCase(
		&flujoTxRunner{mem: mem},
		&flujoProductoRepo{mem: mem},
		&flujoStockRepo{mem: mem},
		&flujoPromocionRepo{},
		&flujoEntregaRepo{mem: mem},
		&flujoTransaccionRepo{mem: mem},
	)
	ventaUC := usecase.NewVentaUseCase(&flujoVentaRepo{mem: mem})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC:      ledgerUC,
		VentaUC:       ventaUC,
		JWTSecret:     testJWTSecret,
		JWTExpMinutes: testExpMin,
	})
	return app, mem
}

func sembrarProductoFlujo(mem *memoriaFlujo, nombre, precio string, cantidad int) *entity.Producto {
	p := &entity.Producto{
		Nombre:          nombre,
		Precio:          decimal.RequireFromString(precio),
		CantidadAlmacen: cantidad,
	}
	p.ID = mem.siguienteID()
	mem.productos[p.ID] = p
	return p
}

func hacerJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujos completos entrega → baja → venta
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoHTTP_EntregaReduccionVenta(t *testing.T) {
	app, mem := nuevaAppFlujo(t)
	p := sembrarProductoFlujo(mem, "Camisa", "25.00", 50)
	almacen := tokenForRol(t, entity.RolAlmacen)
	vendedor := tokenForRol(t, entity.RolVendedor) // userID 7

	// Entrega de 20 unidades al vendedor 7
	resp := hacerJSON(t, app, http.MethodPost, "/api/entregas", almacen, fiber.Map{
		"productId": "1", "vendedorId": "7", "cantidad": "20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 30, mem.productos[p.ID].CantidadAlmacen)
	require.NotNil(t, mem.stocks[claveFlujo{7, p.ID}])
	assert.Equal(t, 20, mem.stocks[claveFlujo{7, p.ID}].Cantidad)

	// Devolución de 5 unidades al almacén
	resp = hacerJSON(t, app, http.MethodPut, "/api/stock/reducir", almacen, fiber.Map{
		"productoId": "1", "vendedorId": "7", "cantidad": "5",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 35, mem.productos[p.ID].CantidadAlmacen)
	assert.Equal(t, 15, mem.stocks[claveFlujo{7, p.ID}].Cantidad)

	// Venta de 5 unidades del vendedor 7
	resp = hacerJSON(t, app, http.MethodPost, "/api/ventas", vendedor, fiber.Map{
		"productoId": "1", "cantidad": "5",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 10, mem.stocks[claveFlujo{7, p.ID}].Cantidad)
	require.Len(t, mem.ventas, 1)
	for _, v := range mem.ventas {
		assert.True(t, v.Total.Equal(decimal.RequireFromString("125.00")), "total %s", v.Total)
	}

	// Conservación: almacén + asignado = inicial - vendido
	assert.Equal(t, 50-5, mem.productos[p.ID].CantidadAlmacen+mem.stocks[claveFlujo{7, p.ID}].Cantidad)
}

func TestFlujoHTTP_EntregaStockInsuficiente(t *testing.T) {
	app, mem := nuevaAppFlujo(t)
	sembrarProductoFlujo(mem, "Gorra", "10.00", 3)
	almacen := tokenForRol(t, entity.RolAlmacen)

	resp := hacerJSON(t, app, http.MethodPost, "/api/entregas", almacen, fiber.Map{
		"productId": "1", "vendedorId": "7", "cantidad": "10",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, 3, mem.productos[1].CantidadAlmacen)
	assert.Empty(t, mem.stocks)
}

func TestFlujoHTTP_VentaRequiereRolVendedor(t *testing.T) {
	app, mem := nuevaAppFlujo(t)
	sembrarProductoFlujo(mem, "Camisa", "25.00", 50)
	almacen := tokenForRol(t, entity.RolAlmacen)

	resp := hacerJSON(t, app, http.MethodPost, "/api/ventas", almacen, fiber.Map{
		"productoId": "1", "cantidad": "5",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestFlujoHTTP_HistorialEntregasDelVendedor(t *testing.T) {
	app, mem := nuevaAppFlujo(t)
	sembrarProductoFlujo(mem, "Camisa", "25.00", 50)
	almacen := tokenForRol(t, entity.RolAlmacen)
	vendedor := tokenForRol(t, entity.RolVendedor)

	resp := hacerJSON(t, app, http.MethodPost, "/api/entregas", almacen, fiber.Map{
		"productId": "1", "vendedorId": "7", "cantidad": "20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// El vendedor consulta sus propias entregas
	resp = hacerJSON(t, app, http.MethodGet, "/api/entregas?vendedorId=7", vendedor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entregas []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entregas))
	assert.Len(t, entregas, 1)

	// Pero no las de otro vendedor
	resp = hacerJSON(t, app, http.MethodGet, "/api/entregas?vendedorId=4", vendedor, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestFlujoHTTP_AnularVentaDeOtroVendedor(t *testing.T) {
	app, mem := nuevaAppFlujo(t)
	p := sembrarProductoFlujo(mem, "Camisa", "25.00", 50)
	almacen := tokenForRol(t, entity.RolAlmacen)
	vendedor := tokenForRol(t, entity.RolVendedor) // userID 7

	resp := hacerJSON(t, app, http.MethodPost, "/api/entregas", almacen, fiber.Map{
		"productId": "1", "vendedorId": "7", "cantidad": "20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = hacerJSON(t, app, http.MethodPost, "/api/ventas", vendedor, fiber.Map{
		"productoId": "1", "cantidad": "5",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, mem.ventas, 1)
	var ventaID int64
	for id := range mem.ventas {
		ventaID = id
	}

	// Un vendedorId explícito distinto al del token se rechaza
	resp = hacerJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/ventas/%d?vendedorId=4", ventaID), vendedor, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Len(t, mem.ventas, 1, "la venta sigue registrada")
	assert.Equal(t, 15, mem.stocks[claveFlujo{7, p.ID}].Cantidad)

	// El propio id explícito sí es válido
	resp = hacerJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/ventas/%d?vendedorId=7", ventaID), vendedor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, mem.ventas)
	assert.Equal(t, 20, mem.stocks[claveFlujo{7, p.ID}].Cantidad, "la anulación restituye la cantidad vendida")
}
