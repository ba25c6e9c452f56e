package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pet-health-log/internal/domain/logs"
	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/platform/logger"
	"pet-health-log/internal/ports/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProfileNotFound = errors.New("pet not found")
)

const MessagePetNotFound = "Pet not found"

type Service struct {
	store store.Client
	log   logger.Logger
	now   func() time.Time
}

func NewService(st store.Client, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: st,
		log:   log.With(map[string]any{"component": "profiles"}),
		now:   time.Now,
	}
}

// LoadProfile lanza las cuatro lecturas a la vez (mascota + tres colecciones de logs)
// y espera a que terminen todas antes de devolver.
//
// - Si la lectura de la mascota falla o no encuentra fila => ErrProfileNotFound, sin bundle.
// - Si falla una colección de logs se loguea y queda vacía; no corta la carga.
// - Los logs se devuelven en el orden del store (sin ordenar).
func (s *Service) LoadProfile(ctx context.Context, petID string) (Bundle, error) {
	log := s.log.With(map[string]any{
		"pet_id":  petID,
		"load_id": uuid.NewString(),
	})

	var (
		pet        pets.Pet
		weights    []logs.WeightLog
		conditions []logs.BodyConditionLog
		visits     []logs.VetVisitLog
	)

	// Sin WithContext: un error de la mascota no cancela las otras lecturas.
	// Cada goroutine escribe en su propia variable.
	var g errgroup.Group
	g.Go(func() error {
		return s.store.FetchOne(ctx, store.CollectionPets, store.Eq(store.FieldID, petID), &pet)
	})
	g.Go(func() error {
		weights = fetchLogs(ctx, s.store, log, store.CollectionWeightLogs, petID, logs.WeightLog.LogPetID)
		return nil
	})
	g.Go(func() error {
		conditions = fetchLogs(ctx, s.store, log, store.CollectionBodyConditionLogs, petID, logs.BodyConditionLog.LogPetID)
		return nil
	})
	g.Go(func() error {
		visits = fetchLogs(ctx, s.store, log, store.CollectionVetVisitLogs, petID, logs.VetVisitLog.LogPetID)
		return nil
	})

	err := g.Wait()
	if err == nil && pet.ID == "" {
		err = store.ErrNotFound
	}
	if err != nil {
		log.Error("error fetching pet data", map[string]any{"err": err})
		return Bundle{}, fmt.Errorf("%w: %w", ErrProfileNotFound, err)
	}

	log.Debug("profile loaded", map[string]any{
		"weight_logs":         len(weights),
		"body_condition_logs": len(conditions),
		"vet_visit_logs":      len(visits),
	})

	return Bundle{
		Pet:               pet,
		WeightLogs:        weights,
		BodyConditionLogs: conditions,
		VetVisitLogs:      visits,
	}, nil
}

// fetchLogs nunca falla: ante error devuelve slice vacío y loguea.
// Descarta filas de otra mascota para mantener el invariante del bundle.
func fetchLogs[T any](ctx context.Context, st store.Client, log logger.Logger, collection, petID string, petOf func(T) store.ID) []T {
	rows := make([]T, 0)
	if err := st.FetchMany(ctx, collection, store.Eq(store.FieldPetID, petID), &rows); err != nil {
		log.Warn("error fetching logs, using empty collection", map[string]any{
			"collection": collection,
			"err":        err,
		})
		return []T{}
	}
	if rows == nil {
		return []T{}
	}

	out := rows[:0]
	for _, r := range rows {
		if petOf(r).String() != petID {
			log.Warn("dropping log of another pet", map[string]any{
				"collection": collection,
				"row_pet_id": petOf(r).String(),
			})
			continue
		}
		out = append(out, r)
	}
	return out
}

// Load es la versión para presentación: nunca devuelve error,
// y el resumen y el estado de salud salen recalculados del bundle.
func (s *Service) Load(ctx context.Context, petID string) View {
	b, err := s.LoadProfile(ctx, petID)
	if err != nil {
		v := emptyView()
		v.Error = MessagePetNotFound
		return v
	}
	return s.viewOf(b)
}

func (s *Service) viewOf(b Bundle) View {
	now := s.now()
	p := b.Pet
	return View{
		Pet:               &p,
		WeightLogs:        b.WeightLogs,
		BodyConditionLogs: b.BodyConditionLogs,
		VetVisitLogs:      b.VetVisitLogs,
		Summary:           b.Summary(now),
		Health:            Health(now, b),
	}
}
