package pets

import (
	"context"

	"pet-health-log/internal/platform/logger"
	"pet-health-log/internal/ports/store"
)

const (
	MessageNoPets = "There are no pets, available"
)

type Service struct {
	store store.Client
	log   logger.Logger
}

func NewService(st store.Client, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: st,
		log:   log.With(map[string]any{"component": "pets"}),
	}
}

// LoadAll trae la colección completa de mascotas, en el orden del store.
// Cero filas => slice vacío, no error. No reintenta.
func (s *Service) LoadAll(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0)
	if err := s.store.FetchMany(ctx, store.CollectionPets, store.Filter{}, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Pet{}
	}
	return out, nil
}

// ListView es lo que consume la pantalla de listado.
type ListView struct {
	Pets    []Pet  `json:"pets"`
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// List nunca falla: un error del store se loguea y queda en ListView.Error.
func (s *Service) List(ctx context.Context) ListView {
	items, err := s.LoadAll(ctx)
	if err != nil {
		s.log.Error("error fetching pets", map[string]any{"err": err})
		return ListView{
			Pets:    []Pet{},
			Empty:   true,
			Message: MessageNoPets,
			Error:   err.Error(),
		}
	}

	v := ListView{Pets: items}
	if len(items) == 0 {
		v.Empty = true
		v.Message = MessageNoPets
	}
	return v
}
