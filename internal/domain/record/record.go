// Package record define la forma genérica con la que los dos backends
// persisten entidades: un Record es un mapa con la misma estructura del JSON
// en disco/JSONB, y el códec de este paquete lo convierte a/desde las
// entidades tipadas aplicando los defaults del dominio.
package record

import "fmt"

// Collection identifica un recurso durable: una colección por tipo de entidad.
type Collection string

const (
	Inventory Collection = "inventory"
	Documents Collection = "documents"
	Logs      Collection = "logs"
	Users     Collection = "users"
)

// Collections lista las colecciones conocidas del sistema.
func Collections() []Collection {
	return []Collection{Inventory, Documents, Logs, Users}
}

// Record forma persistible de una entidad. Los valores numéricos se guardan
// como números JSON y las fechas como strings RFC 3339.
type Record map[string]any

// ID devuelve el identificador como string sin asumir su tipo subyacente
// (los ids del backend de archivos son timestamps, los del backend en red son
// nativos). Vacío si el registro aún no tiene id.
func (r Record) ID() string {
	v, ok := r["id"]
	if !ok || v == nil {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case float64:
		// json.Unmarshal entrega números como float64; ids numéricos heredados
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprintf("%v", id)
	}
}

// Clone copia superficial del registro.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge aplica un parche superficial sobre una copia del registro: los campos
// presentes en patch pisan a los existentes, el resto queda intacto. El id
// nunca se toca.
func (r Record) Merge(patch Record) Record {
	out := r.Clone()
	for k, v := range patch {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}
