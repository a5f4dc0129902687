package ledger_test

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-ventas/internal/domain/entity"
	"github.com/tu-usuario/almacen-ventas/internal/domain/repository"
)

// clave (vendedor, producto) de una asignación.
type claveStock struct {
	vendedorID, productoID int64
}

// almacenMemoria es el estado compartido de los repositorios fake. El TxRunner
// fake toma una copia profunda antes de ejecutar fn y la restaura si fn falla,
// emulando el rollback de la transacción real.
type almacenMemoria struct {
	productos     map[int64]*entity.Producto
	stocks        map[claveStock]*entity.StockVendedor
	parametros    map[claveStock]map[string]int
	entregas      []*entity.Entrega
	transacciones []*entity.Transaccion
	ventas        map[int64]*entity.Venta
	promociones   []*entity.Promocion
	nextID        int64

	// fallaEn simula un error de BD en la operación indicada.
	fallaEn map[string]error
}

func nuevoAlmacenMemoria() *almacenMemoria {
	return &almacenMemoria{
		productos:  make(map[int64]*entity.Producto),
		stocks:     make(map[claveStock]*entity.StockVendedor),
		parametros: make(map[claveStock]map[string]int),
		ventas:     make(map[int64]*entity.Venta),
		fallaEn:    make(map[string]error),
	}
}

func (m *almacenMemoria) siguienteID() int64 {
	m.nextID++
	return m.nextID
}

func (m *almacenMemoria) falla(op string) error {
	return m.fallaEn[op]
}

// clonar hace una copia profunda del estado (snapshot para el rollback fake).
func (m *almacenMemoria) clonar() *almacenMemoria {
	c := nuevoAlmacenMemoria()
	c.nextID = m.nextID
	c.fallaEn = m.fallaEn
	for id, p := range m.productos {
		cp := *p
		c.productos[id] = &cp
	}
	for k, s := range m.stocks {
		cs := *s
		c.stocks[k] = &cs
	}
	for k, params := range m.parametros {
		cp := make(map[string]int, len(params))
		for nombre, cant := range params {
			cp[nombre] = cant
		}
		c.parametros[k] = cp
	}
	for _, e := range m.entregas {
		ce := *e
		c.entregas = append(c.entregas, &ce)
	}
	for _, t := range m.transacciones {
		ct := *t
		c.transacciones = append(c.transacciones, &ct)
	}
	for id, v := range m.ventas {
		cv := *v
		cv.Parametros = append([]entity.VentaParametro(nil), v.Parametros...)
		c.ventas[id] = &cv
	}
	for _, p := range m.promociones {
		cp := *p
		c.promociones = append(c.promociones, &cp)
	}
	return c
}

// restaurar vuelca el snapshot sobre el estado actual.
func (m *almacenMemoria) restaurar(snap *almacenMemoria) {
	m.productos = snap.productos
	m.stocks = snap.stocks
	m.parametros = snap.parametros
	m.entregas = snap.entregas
	m.transacciones = snap.transacciones
	m.ventas = snap.ventas
	m.promociones = snap.promociones
	m.nextID = snap.nextID
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	mem *almacenMemoria
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
	stockRepo repository.StockVendedorRepository,
	entregaRepo repository.EntregaRepository,
	transaccionRepo repository.TransaccionRepository,
	ventaRepo repository.VentaRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	snap := r.mem.clonar()
	err := fn(
		&fakeProductoRepo{mem: r.mem},
		&fakeStockRepo{mem: r.mem},
		&fakeEntregaRepo{mem: r.mem},
		&fakeTransaccionRepo{mem: r.mem},
		&fakeVentaRepo{mem: r.mem},
	)
	if err != nil {
		r.mem.restaurar(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	mem *almacenMemoria
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	p.ID = r.mem.siguienteID()
	cp := *p
	r.mem.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.mem.productos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	for _, p := range r.mem.productos {
		if p.Nombre == nombre {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *fakeProductoRepo) List(repository.FiltroProductos) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.mem.productos))
	for _, p := range r.mem.productos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	cp := *p
	r.mem.productos[p.ID] = &cp
	return nil
}

func (r *fakeProductoRepo) UpdateCantidadAlmacen(id int64, cantidad int) error {
	if err := r.mem.falla("producto.UpdateCantidadAlmacen"); err != nil {
		return err
	}
	p, ok := r.mem.productos[id]
	if !ok {
		return nil
	}
	p.CantidadAlmacen = cantidad
	return nil
}

func (r *fakeProductoRepo) Delete(id int64) error {
	delete(r.mem.productos, id)
	return nil
}

type fakeStockRepo struct {
	mem *almacenMemoria
}

func (r *fakeStockRepo) Get(vendedorID, productoID int64) (*entity.StockVendedor, error) {
	s, ok := r.mem.stocks[claveStock{vendedorID, productoID}]
	if !ok {
		return nil, nil
	}
	cs := *s
	return &cs, nil
}

func (r *fakeStockRepo) GetForUpdate(vendedorID, productoID int64) (*entity.StockVendedor, error) {
	return r.Get(vendedorID, productoID)
}

func (r *fakeStockRepo) Upsert(stock *entity.StockVendedor) error {
	if err := r.mem.falla("stock.Upsert"); err != nil {
		return err
	}
	cs := *stock
	r.mem.stocks[claveStock{stock.VendedorID, stock.ProductoID}] = &cs
	return nil
}

func (r *fakeStockRepo) ListByVendedor(vendedorID int64) ([]*entity.StockVendedor, error) {
	var out []*entity.StockVendedor
	for k, s := range r.mem.stocks {
		if k.vendedorID == vendedorID {
			cs := *s
			out = append(out, &cs)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListByProductoIDs(vendedorID int64, productoIDs []int64) ([]*entity.StockVendedor, error) {
	var out []*entity.StockVendedor
	for _, pid := range productoIDs {
		if s, ok := r.mem.stocks[claveStock{vendedorID, pid}]; ok {
			cs := *s
			out = append(out, &cs)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) SumByProducto(productoID int64) (int, error) {
	total := 0
	for k, s := range r.mem.stocks {
		if k.productoID == productoID {
			total += s.Cantidad
		}
	}
	return total, nil
}

func (r *fakeStockRepo) ListParametros(vendedorID, productoID int64) ([]*entity.ParametroStock, error) {
	var out []*entity.ParametroStock
	for nombre, cant := range r.mem.parametros[claveStock{vendedorID, productoID}] {
		out = append(out, &entity.ParametroStock{
			VendedorID: vendedorID,
			ProductoID: productoID,
			Nombre:     nombre,
			Cantidad:   cant,
		})
	}
	return out, nil
}

func (r *fakeStockRepo) ListParametrosForUpdate(vendedorID, productoID int64) ([]*entity.ParametroStock, error) {
	return r.ListParametros(vendedorID, productoID)
}

func (r *fakeStockRepo) UpsertParametro(p *entity.ParametroStock) error {
	if err := r.mem.falla("stock.UpsertParametro"); err != nil {
		return err
	}
	k := claveStock{p.VendedorID, p.ProductoID}
	if r.mem.parametros[k] == nil {
		r.mem.parametros[k] = make(map[string]int)
	}
	r.mem.parametros[k][p.Nombre] = p.Cantidad
	return nil
}

func (r *fakeStockRepo) DeleteParametros(vendedorID, productoID int64) error {
	if err := r.mem.falla("stock.DeleteParametros"); err != nil {
		return err
	}
	delete(r.mem.parametros, claveStock{vendedorID, productoID})
	return nil
}

type fakeEntregaRepo struct {
	mem *almacenMemoria
}

func (r *fakeEntregaRepo) Create(e *entity.Entrega) error {
	if err := r.mem.falla("entrega.Create"); err != nil {
		return err
	}
	e.ID = r.mem.siguienteID()
	ce := *e
	r.mem.entregas = append(r.mem.entregas, &ce)
	return nil
}

func (r *fakeEntregaRepo) ListByVendedor(vendedorID int64, _, _ *time.Time, _, _ int) ([]*entity.Entrega, error) {
	var out []*entity.Entrega
	for _, e := range r.mem.entregas {
		if e.VendedorID == vendedorID {
			ce := *e
			out = append(out, &ce)
		}
	}
	return out, nil
}

type fakeTransaccionRepo struct {
	mem *almacenMemoria
}

func (r *fakeTransaccionRepo) Create(t *entity.Transaccion) error {
	if err := r.mem.falla("transaccion.Create"); err != nil {
		return err
	}
	t.ID = r.mem.siguienteID()
	ct := *t
	r.mem.transacciones = append(r.mem.transacciones, &ct)
	return nil
}

func (r *fakeTransaccionRepo) ListByProducto(productoID int64, _, _ *time.Time, _, _ int) ([]*entity.Transaccion, error) {
	var out []*entity.Transaccion
	for _, t := range r.mem.transacciones {
		if t.ProductoID == productoID {
			ct := *t
			out = append(out, &ct)
		}
	}
	return out, nil
}

type fakeVentaRepo struct {
	mem *almacenMemoria
}

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	if err := r.mem.falla("venta.Create"); err != nil {
		return err
	}
	v.ID = r.mem.siguienteID()
	cv := *v
	cv.Parametros = append([]entity.VentaParametro(nil), v.Parametros...)
	r.mem.ventas[v.ID] = &cv
	return nil
}

func (r *fakeVentaRepo) GetByIDAndVendedor(id, vendedorID int64) (*entity.Venta, error) {
	v, ok := r.mem.ventas[id]
	if !ok || v.VendedorID != vendedorID {
		return nil, nil
	}
	cv := *v
	cv.Parametros = append([]entity.VentaParametro(nil), v.Parametros...)
	return &cv, nil
}

func (r *fakeVentaRepo) Delete(id int64) error {
	delete(r.mem.ventas, id)
	return nil
}

func (r *fakeVentaRepo) List(filtro repository.FiltroVentas) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.mem.ventas {
		if filtro.VendedorID != nil && v.VendedorID != *filtro.VendedorID {
			continue
		}
		cv := *v
		out = append(out, &cv)
	}
	return out, nil
}

type fakePromocionRepo struct {
	mem *almacenMemoria
}

func (r *fakePromocionRepo) Create(p *entity.Promocion) error {
	p.ID = r.mem.siguienteID()
	cp := *p
	r.mem.promociones = append(r.mem.promociones, &cp)
	return nil
}

func (r *fakePromocionRepo) List() ([]*entity.Promocion, error) {
	out := make([]*entity.Promocion, 0, len(r.mem.promociones))
	for _, p := range r.mem.promociones {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePromocionRepo) Delete(id int64) error {
	for i, p := range r.mem.promociones {
		if p.ID == id {
			r.mem.promociones = append(r.mem.promociones[:i], r.mem.promociones[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePromocionRepo) GetActivaByProducto(productoID int64, fecha time.Time) (*entity.Promocion, error) {
	for _, p := range r.mem.promociones {
		if p.ProductoID == productoID && p.Activa(fecha) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
