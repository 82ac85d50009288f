// Package auth implementa registro y login. La política de transporte y
// validación de credenciales queda fuera del núcleo: la contraseña se guarda
// y compara tal cual llega.
package auth

import (
	"context"
	"time"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/domain"
	"github.com/lbcompany/inventario-api/internal/domain/entity"
	"github.com/lbcompany/inventario-api/internal/domain/record"
	"github.com/lbcompany/inventario-api/internal/domain/repository"
	"github.com/lbcompany/inventario-api/pkg/jwt"
)

// Config del caso de uso: código de registro y parámetros del token.
type Config struct {
	SecurityCode string
	JWTSecret    string
	JWTIssuer    string
	ExpMinutes   int
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	store repository.RecordStore
	audit *audit.UseCase
	cfg   Config
}

// New construye el caso de uso.
func New(store repository.RecordStore, auditUC *audit.UseCase, cfg Config) *UseCase {
	return &UseCase{store: store, audit: auditUC, cfg: cfg}
}

// Register crea la cuenta si el código de seguridad coincide y el username no
// existe. Deja bitácora con el usuario nuevo como actor.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Username == "" || in.Password == "" || in.SecurityCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SecurityCode != uc.cfg.SecurityCode {
		return nil, domain.ErrInvalidCode
	}
	existing, err := uc.findByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	user := entity.User{
		Username:  in.Username,
		Password:  in.Password,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := uc.store.Insert(ctx, record.Users, record.UserToRecord(user)); err != nil {
		return nil, err
	}
	if err := uc.audit.Record(ctx, in.Username, "Registered new user: "+in.Username); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{Message: "Registrado correctamente", Username: in.Username}, nil
}

// Login verifica las credenciales, emite el token de sesión y deja bitácora.
// Un login fallido no muta nada y no genera entrada.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.findByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != in.Password {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, user.Username, uc.cfg.JWTIssuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.audit.Record(ctx, user.Username, "User logged in: "+user.Username); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: user.Username}, nil
}

// findByUsername recorre la colección: el contrato del store no tiene lectura
// puntual y la colección de usuarios es pequeña.
func (uc *UseCase) findByUsername(ctx context.Context, username string) (*entity.User, error) {
	recs, err := uc.store.ListAll(ctx, record.Users)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		u := record.UserFromRecord(r)
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}
