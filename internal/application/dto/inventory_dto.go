package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/inventory. Los campos numéricos se
// aceptan como número o texto; un valor ausente o malformado se normaliza a 0
// en lugar de rechazar el request (tolerancia heredada de los clientes).
type CreateItemRequest struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  any    `json:"quantity"`
	UnitCost  any    `json:"unitCost"`
	UnitPrice any    `json:"unitPrice"`
}

// UpdateItemRequest parche para PUT /api/inventory/:id. Campo nil = no tocar;
// los numéricos presentes pero malformados se normalizan a 0.
type UpdateItemRequest struct {
	SKU       *string `json:"sku"`
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Quantity  any     `json:"quantity"`
	UnitCost  any     `json:"unitCost"`
	UnitPrice any     `json:"unitPrice"`
}

// ItemResponse forma de salida de un artículo. lineValue y lineRevenue se
// calculan al leer, nunca se persisten.
type ItemResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineValue   decimal.Decimal `json:"lineValue"`
	LineRevenue decimal.Decimal `json:"lineRevenue"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

// SummaryResponse totales del inventario para el dashboard.
type SummaryResponse struct {
	TotalItems    int             `json:"totalItems"`
	TotalQuantity int64           `json:"totalQuantity"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}
