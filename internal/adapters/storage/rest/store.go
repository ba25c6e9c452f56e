package rest

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-health-log/internal/platform/httpclient"
	"pet-health-log/internal/ports/store"
)

const (
	restPrefix = "/rest/v1/"

	// PostgREST devuelve un objeto (no array); 406 si no hay exactamente una fila.
	acceptObject = "application/vnd.pgrst.object+json"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Store implementa store.Client contra una API estilo PostgREST/Supabase.
type Store struct {
	http *httpclient.Client
}

func New(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("rest: empty base url")
	}
	c, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return NewWithClient(c, cfg.APIKey), nil
}

// NewWithClient usa un httpclient ya armado (tests).
func NewWithClient(c *httpclient.Client, apiKey string) *Store {
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}
	if apiKey != "" {
		c.Headers["apikey"] = apiKey
		c.Headers["Authorization"] = "Bearer " + apiKey
	}
	return &Store{http: c}
}

func (s *Store) FetchOne(ctx context.Context, collection string, f store.Filter, out any) error {
	if err := store.ValidateQuery(collection, f); err != nil {
		return err
	}

	err := s.http.GetJSON(ctx, restPrefix+collection, query(f), map[string]string{"Accept": acceptObject}, out)
	if err == nil {
		return nil
	}
	if httpclient.StatusOf(err) == http.StatusNotAcceptable {
		return store.ErrNotFound
	}
	return &store.TransportError{Collection: collection, Op: "fetchOne", Err: err}
}

func (s *Store) FetchMany(ctx context.Context, collection string, f store.Filter, out any) error {
	if err := store.ValidateQuery(collection, f); err != nil {
		return err
	}
	if err := s.http.GetJSON(ctx, restPrefix+collection, query(f), nil, out); err != nil {
		return &store.TransportError{Collection: collection, Op: "fetchMany", Err: err}
	}
	return nil
}

func query(f store.Filter) url.Values {
	q := url.Values{"select": {"*"}}
	if !f.IsZero() {
		q.Set(f.Field, "eq."+f.Equals)
	}
	return q
}
