package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-health-log/internal/domain/logs"
	"pet-health-log/internal/domain/pets"
	"pet-health-log/internal/ports/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, h http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	st, err := New(Config{BaseURL: srv.URL, APIKey: "anon-key", Timeout: time.Second})
	require.NoError(t, err)
	return st
}

func TestFetchOne_SendsPostgrestRequest(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/pets", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "eq.1", r.URL.Query().Get("id"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, acceptObject, r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"id":1,"name":"Milo","species":"dog","age":4}`))
	})

	var p pets.Pet
	require.NoError(t, st.FetchOne(context.Background(), store.CollectionPets, store.Eq(store.FieldID, "1"), &p))
	assert.Equal(t, store.ID("1"), p.ID)
	assert.Equal(t, "Milo", p.Name)
}

func TestFetchOne_406IsNotFound(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"PGRST116"}`, http.StatusNotAcceptable)
	})

	var p pets.Pet
	err := st.FetchOne(context.Background(), store.CollectionPets, store.Eq(store.FieldID, "404"), &p)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.False(t, store.IsTransport(err))
}

func TestFetchMany_DecodesInOrder(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/weight_logs", r.URL.Path)
		assert.Equal(t, "eq.1", r.URL.Query().Get("pet_id"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`[
			{"id":3,"pet_id":1,"date":"2024-06-10","weight":3.5},
			{"id":1,"pet_id":1,"date":"2024-06-01","weight":3}
		]`))
	})

	var ws []logs.WeightLog
	require.NoError(t, st.FetchMany(context.Background(), store.CollectionWeightLogs, store.Eq(store.FieldPetID, "1"), &ws))
	require.Len(t, ws, 2)
	assert.Equal(t, store.ID("3"), ws[0].ID)
	assert.Equal(t, 3.5, ws[0].Weight)
}

func TestFetchMany_LargeListIsComplete(t *testing.T) {
	const n = 20000
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		var b strings.Builder
		b.WriteString("[")
		for i := 1; i <= n; i++ {
			if i > 1 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, `{"id":%d,"name":"Pet %d","species":"dog","age":3}`, i, i)
		}
		b.WriteString("]")
		_, _ = w.Write([]byte(b.String()))
	})

	var ps []pets.Pet
	require.NoError(t, st.FetchMany(context.Background(), store.CollectionPets, store.Filter{}, &ps))
	require.Len(t, ps, n)
	assert.Equal(t, store.ID("20000"), ps[n-1].ID)
	assert.Equal(t, pets.SpeciesDog, ps[0].Species)
}

func TestFetchMany_ServerErrorIsTransport(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	var ws []logs.WeightLog
	err := st.FetchMany(context.Background(), store.CollectionWeightLogs, store.Eq(store.FieldPetID, "1"), &ws)
	require.Error(t, err)
	assert.True(t, store.IsTransport(err))
}

func TestFetch_RejectsUnknownCollection(t *testing.T) {
	st := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected")
	})

	var out []map[string]any
	err := st.FetchMany(context.Background(), "owners", store.Filter{}, &out)
	assert.True(t, errors.Is(err, store.ErrUnknownCollection))
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
