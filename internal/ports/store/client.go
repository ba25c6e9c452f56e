package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Colecciones conocidas del store remoto.
const (
	CollectionPets              = "pets"
	CollectionWeightLogs        = "weight_logs"
	CollectionBodyConditionLogs = "body_condition_logs"
	CollectionVetVisitLogs      = "vet_visit_logs"
)

// Campos por los que se permite filtrar (igualdad exacta).
const (
	FieldID    = "id"
	FieldPetID = "pet_id"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownField      = errors.New("unknown filter field")
)

// Filter es un filtro de igualdad sobre un solo campo.
// El valor cero (Field vacío) significa "sin filtro".
type Filter struct {
	Field  string
	Equals string
}

func Eq(field, value string) Filter {
	return Filter{Field: field, Equals: value}
}

func (f Filter) IsZero() bool {
	return f.Field == ""
}

// Client es el contrato del store remoto (opaco para el core).
//
// FetchOne decodifica una sola fila en out; devuelve ErrNotFound si no hay filas.
// FetchMany decodifica todas las filas en out (puntero a slice), en el orden del store;
// cero filas no es error.
type Client interface {
	FetchOne(ctx context.Context, collection string, f Filter, out any) error
	FetchMany(ctx context.Context, collection string, f Filter, out any) error
}

// TransportError: la llamada al store falló (red, servidor, driver).
type TransportError struct {
	Collection string
	Op         string
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ValidateQuery verifica colección y campo contra la lista blanca.
// Los adapters SQL dependen de esto para armar queries sin inyección.
func ValidateQuery(collection string, f Filter) error {
	switch collection {
	case CollectionPets, CollectionWeightLogs, CollectionBodyConditionLogs, CollectionVetVisitLogs:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if f.IsZero() {
		return nil
	}
	switch f.Field {
	case FieldID, FieldPetID:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f.Field)
	}
}

// ID acepta ids como string o número en el JSON de las filas
// (algunos stores usan bigint para las PK).
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }
