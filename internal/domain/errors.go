package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidCode    = errors.New("código de seguridad inválido")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrEmptyInventory = errors.New("inventario sin registros")
)
