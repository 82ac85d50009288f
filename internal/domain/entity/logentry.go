package entity

import "time"

// ActorSystem actor por defecto cuando una acción no proviene de un usuario.
const ActorSystem = "System"

// LogEntry registro inmutable de una acción mutadora. Solo se agrega, nunca se
// actualiza ni se borra; el orden "más reciente primero" es un contrato de
// lectura, no de almacenamiento.
type LogEntry struct {
	ID     string
	User   string
	Action string
	Time   time.Time
}
