package record

import (
	"time"

	"github.com/lbcompany/inventario-api/internal/domain/entity"
)

// Códec entidad <-> Record. El conjunto de campos por tipo es estable; los
// opcionales ausentes reciben su default al decodificar.

// ItemToRecord serializa un artículo. Los montos van como números JSON.
func ItemToRecord(it entity.InventoryItem) Record {
	r := Record{
		"sku":       it.SKU,
		"name":      it.Name,
		"category":  it.Category,
		"quantity":  it.Quantity,
		"unitCost":  it.UnitCost.InexactFloat64(),
		"unitPrice": it.UnitPrice.InexactFloat64(),
		"createdAt": it.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if it.ID != "" {
		r["id"] = it.ID
	}
	if it.UpdatedAt != nil {
		r["updatedAt"] = it.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return r
}

// ItemFromRecord decodifica un artículo aplicando defaults a los campos
// numéricos ausentes o malformados.
func ItemFromRecord(r Record) entity.InventoryItem {
	it := entity.InventoryItem{
		ID:        r.ID(),
		SKU:       CoerceString(r["sku"]),
		Name:      CoerceString(r["name"]),
		Category:  CoerceString(r["category"]),
		Quantity:  CoerceInt(r["quantity"]),
		UnitCost:  CoerceDecimal(r["unitCost"]),
		UnitPrice: CoerceDecimal(r["unitPrice"]),
		CreatedAt: CoerceTime(r["createdAt"]),
	}
	if _, ok := r["updatedAt"]; ok {
		if t := CoerceTime(r["updatedAt"]); !t.IsZero() {
			it.UpdatedAt = &t
		}
	}
	return it
}

// DocumentToRecord serializa los metadatos de un documento.
func DocumentToRecord(d entity.Document) Record {
	r := Record{
		"name":     d.Name,
		"filename": d.Filename,
		"size":     d.Size,
		"date":     d.Date.UTC().Format(time.RFC3339Nano),
	}
	if d.ID != "" {
		r["id"] = d.ID
	}
	return r
}

// DocumentFromRecord decodifica los metadatos de un documento.
func DocumentFromRecord(r Record) entity.Document {
	return entity.Document{
		ID:       r.ID(),
		Name:     CoerceString(r["name"]),
		Filename: CoerceString(r["filename"]),
		Size:     CoerceInt(r["size"]),
		Date:     CoerceTime(r["date"]),
	}
}

// LogEntryToRecord serializa una entrada de bitácora.
func LogEntryToRecord(e entity.LogEntry) Record {
	r := Record{
		"user":   e.User,
		"action": e.Action,
		"time":   e.Time.UTC().Format(time.RFC3339Nano),
	}
	if e.ID != "" {
		r["id"] = e.ID
	}
	return r
}

// LogEntryFromRecord decodifica una entrada de bitácora; el actor ausente
// vale "System".
func LogEntryFromRecord(r Record) entity.LogEntry {
	user := CoerceString(r["user"])
	if user == "" {
		user = entity.ActorSystem
	}
	return entity.LogEntry{
		ID:     r.ID(),
		User:   user,
		Action: CoerceString(r["action"]),
		Time:   CoerceTime(r["time"]),
	}
}

// UserToRecord serializa una credencial. La contraseña se persiste tal cual.
func UserToRecord(u entity.User) Record {
	r := Record{
		"username":  u.Username,
		"password":  u.Password,
		"createdAt": u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if u.ID != "" {
		r["id"] = u.ID
	}
	return r
}

// UserFromRecord decodifica una credencial.
func UserFromRecord(r Record) entity.User {
	return entity.User{
		ID:        r.ID(),
		Username:  CoerceString(r["username"]),
		Password:  CoerceString(r["password"]),
		CreatedAt: CoerceTime(r["createdAt"]),
	}
}
