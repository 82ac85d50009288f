package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario. El ID lo asigna el
// backend activo y se compara siempre como string; Quantity/UnitCost/UnitPrice
// valen 0 cuando el input los omite o trae basura (tolerancia deliberada).
type InventoryItem struct {
	ID        string
	SKU       string
	Name      string
	Category  string
	Quantity  int64
	UnitCost  decimal.Decimal
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt *time.Time // nil hasta la primera actualización
}

// LineValue valor de la línea: quantity × unitCost. Derivado, nunca se persiste.
func (i InventoryItem) LineValue() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(i.Quantity))
}

// LineRevenue ingreso potencial de la línea: quantity × unitPrice. Derivado, nunca se persiste.
func (i InventoryItem) LineRevenue() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}
