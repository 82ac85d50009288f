// Package audit registra la bitácora de actividad: un LogEntry por cada
// operación mutadora del sistema, escrito de forma síncrona antes de que la
// operación reporte éxito. Las lecturas nunca generan entradas.
package audit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/domain/entity"
	"github.com/lbcompany/inventario-api/internal/domain/record"
	"github.com/lbcompany/inventario-api/internal/domain/repository"
)

// UseCase casos de uso de la bitácora (solo append + lectura).
type UseCase struct {
	store repository.RecordStore
}

// New construye el caso de uso.
func New(store repository.RecordStore) *UseCase {
	return &UseCase{store: store}
}

// Record agrega una entrada. Actor vacío queda como "System". El error se
// propaga al llamador: una mutación que no pudo dejar bitácora no debe
// reportar éxito.
func (uc *UseCase) Record(ctx context.Context, actor, action string) error {
	if actor == "" {
		actor = entity.ActorSystem
	}
	e := entity.LogEntry{
		User:   actor,
		Action: action,
		Time:   time.Now().UTC(),
	}
	if _, err := uc.store.Insert(ctx, record.Logs, record.LogEntryToRecord(e)); err != nil {
		return fmt.Errorf("registrar bitácora: %w", err)
	}
	return nil
}

// List devuelve las entradas de más reciente a más antigua. El orden es un
// contrato de lectura: el almacenamiento guarda en orden de llegada.
func (uc *UseCase) List(ctx context.Context) ([]dto.LogEntryResponse, error) {
	recs, err := uc.store.ListAll(ctx, record.Logs)
	if err != nil {
		return nil, err
	}
	entries := make([]entity.LogEntry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, record.LogEntryFromRecord(r))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})
	out := make([]dto.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LogEntryResponse{User: e.User, Action: e.Action, Time: e.Time})
	}
	return out, nil
}
