package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pet-health-log/internal/ports/store"

	"github.com/google/uuid"
)

type row map[string]any

// Store es un store.Client en memoria. Mantiene el orden de inserción por colección.
type Store struct {
	mu       sync.RWMutex
	rows     map[string][]row
	failures map[string]error
}

func NewStore() *Store {
	return &Store{
		rows:     make(map[string][]row),
		failures: make(map[string]error),
	}
}

// Insert agrega una fila (struct o map) a la colección. Si no trae id, se genera uno.
func (s *Store) Insert(collection string, v any) (string, error) {
	if err := store.ValidateQuery(collection, store.Filter{}); err != nil {
		return "", err
	}

	r, err := toRow(v)
	if err != nil {
		return "", fmt.Errorf("memory: insert %s: %w", collection, err)
	}
	id := valueString(r[store.FieldID])
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
		r[store.FieldID] = id
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[collection] = append(s.rows[collection], r)
	return id, nil
}

// Fail hace que toda lectura de la colección devuelva err como TransportError.
// nil limpia la falla.
func (s *Store) Fail(collection string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, collection)
		return
	}
	s.failures[collection] = err
}

func (s *Store) FetchOne(ctx context.Context, collection string, f store.Filter, out any) error {
	matches, err := s.query(ctx, "fetchOne", collection, f)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return store.ErrNotFound
	}
	return decode(matches[0], out)
}

func (s *Store) FetchMany(ctx context.Context, collection string, f store.Filter, out any) error {
	matches, err := s.query(ctx, "fetchMany", collection, f)
	if err != nil {
		return err
	}
	return decode(matches, out)
}

func (s *Store) query(ctx context.Context, op, collection string, f store.Filter) ([]row, error) {
	if err := store.ValidateQuery(collection, f); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &store.TransportError{Collection: collection, Op: op, Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.failures[collection]; err != nil {
		return nil, &store.TransportError{Collection: collection, Op: op, Err: err}
	}

	out := make([]row, 0)
	for _, r := range s.rows[collection] {
		if !f.IsZero() && valueString(r[f.Field]) != f.Equals {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func toRow(v any) (row, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var r row
	if err := dec.Decode(&r); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.New("row must be an object")
	}
	return r, nil
}

func decode(v any, out any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("memory: encode rows: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("memory: decode rows: %w", err)
	}
	return nil
}

func valueString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
