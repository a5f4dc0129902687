package dto

import "time"

// Los identificadores numéricos llegan como string por el wire y se parsean
// a entero en el handler antes de cualquier aritmética o comparación.

// EntregaRequest body para POST /api/entregas.
type EntregaRequest struct {
	ProductoID string `json:"productId"`
	VendedorID string `json:"vendedorId"`
	Cantidad   string `json:"cantidad"`
}

// EntregaResponse registro de entrega creado.
type EntregaResponse struct {
	ID         int64     `json:"id"`
	ProductoID int64     `json:"productoId"`
	VendedorID int64     `json:"vendedorId"`
	Cantidad   int       `json:"cantidad"`
	Fecha      time.Time `json:"fecha"`
}

// TransaccionResponse movimiento de stock entre almacén y vendedor.
type TransaccionResponse struct {
	ID         int64     `json:"id"`
	ProductoID int64     `json:"productoId"`
	VendedorID int64     `json:"vendedorId"`
	Cantidad   int       `json:"cantidad"`
	Tipo       string    `json:"tipo"`
	Origen     string    `json:"origen"`
	Destino    string    `json:"destino"`
	Fecha      time.Time `json:"fecha"`
}

// ReducirRequest body para PUT /api/stock/reducir.
type ReducirRequest struct {
	ProductoID string `json:"productoId"`
	VendedorID string `json:"vendedorId"`
	Cantidad   string `json:"cantidad"`
}

// ParametroCantidad par (nombre de parámetro, cantidad) para sets absolutos y desgloses.
type ParametroCantidad struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// ActualizarCantidadesRequest body para PUT /api/stock/parametros.
// Si Parametros viene, cada parámetro se fija a su cantidad (overwrite, no delta)
// y el total de la asignación se recalcula como la suma; si no, NuevaCantidad
// fija el total directamente.
type ActualizarCantidadesRequest struct {
	VendedorID    string              `json:"vendorId"`
	ProductoID    string              `json:"productId"`
	NuevaCantidad *int                `json:"newQuantity,omitempty"`
	Parametros    []ParametroCantidad `json:"parametros,omitempty"`
}

// StockVendedorResponse asignación de stock de un vendedor.
type StockVendedorResponse struct {
	VendedorID int64               `json:"vendedorId"`
	ProductoID int64               `json:"productoId"`
	Cantidad   int                 `json:"cantidad"`
	Parametros []ParametroCantidad `json:"parametros,omitempty"`
}

// ResumenProductoResponse desglose de cantidades de un producto para verificar
// la conservación: almacén + asignado.
type ResumenProductoResponse struct {
	ProductoID       int64 `json:"productoId"`
	CantidadAlmacen  int   `json:"cantidadAlmacen"`
	CantidadAsignada int   `json:"cantidadAsignada"`
	Total            int   `json:"total"`
}
