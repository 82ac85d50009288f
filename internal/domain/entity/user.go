package entity

import "time"

// User credencial de acceso. Se crea una vez en el registro, se lee al
// autenticar y nunca se actualiza ni se borra. La contraseña se guarda tal
// cual llega: la política de transporte/validación vive fuera de este núcleo.
type User struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
}
