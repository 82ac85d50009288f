package dto

import "time"

// DocumentResponse metadatos de un documento. El handle del payload es
// interno: los bytes solo se exponen por la descarga por id.
type DocumentResponse struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Size int64     `json:"size"`
	Date time.Time `json:"date"`
}

// UploadResponse resultado de un upload múltiple.
type UploadResponse struct {
	Message string             `json:"message"`
	Files   []DocumentResponse `json:"files"`
}

// ReportResponse resultado de la generación de reporte.
type ReportResponse struct {
	Message string             `json:"message"`
	Files   []DocumentResponse `json:"files"`
}
