package entity

import "time"

// Document representa un archivo almacenado con sus metadatos. Puede venir de
// un upload del usuario o ser generado por el sistema (reportes). Filename es
// el handle interno del payload: ningún otro registro referencia esos bytes.
type Document struct {
	ID       string
	Name     string // nombre para mostrar (no necesariamente único)
	Filename string // handle del payload en el almacenamiento de blobs
	Size     int64
	Date     time.Time
}
