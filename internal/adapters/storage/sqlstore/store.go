package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pet-health-log/internal/ports/store"
)

// Dialect define el formato de los placeholders.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// Store implementa store.Client sobre database/sql.
// Las filas se leen como mapa columna->valor y se decodifican vía JSON en out.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, dialect: d}
}

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) FetchOne(ctx context.Context, collection string, f store.Filter, out any) error {
	rows, err := s.query(ctx, "fetchOne", collection, f, true)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return store.ErrNotFound
	}
	return decode(rows[0], out)
}

func (s *Store) FetchMany(ctx context.Context, collection string, f store.Filter, out any) error {
	rows, err := s.query(ctx, "fetchMany", collection, f, false)
	if err != nil {
		return err
	}
	return decode(rows, out)
}

// buildQuery arma el SELECT. collection y field ya pasaron por store.ValidateQuery.
// La comparación es textual para aceptar ids numéricos o uuid.
func (s *Store) buildQuery(collection string, f store.Filter, one bool) (string, []any) {
	q := "SELECT * FROM " + collection
	var args []any
	if !f.IsZero() {
		q += " WHERE CAST(" + f.Field + " AS TEXT) = " + s.dialect.placeholder(1)
		args = append(args, f.Equals)
	}
	if one {
		q += " LIMIT 1"
	}
	return q, args
}

func (s *Store) query(ctx context.Context, op, collection string, f store.Filter, one bool) ([]map[string]any, error) {
	if err := store.ValidateQuery(collection, f); err != nil {
		return nil, err
	}
	if s.db == nil {
		return nil, s.transportErr(collection, op, errors.New("nil db"))
	}

	q, args := s.buildQuery(collection, f, one)
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, s.transportErr(collection, op, err)
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		return nil, s.transportErr(collection, op, err)
	}
	return out, nil
}

func (s *Store) transportErr(collection, op string, err error) error {
	return &store.TransportError{Collection: collection, Op: op, Err: fmt.Errorf("%s: %w", s.dialect, err)}
}

func scanRows(rows *sql.Rows) ([]map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	dbTypes := make([]string, len(cols))
	for i, ct := range types {
		dbTypes[i] = ct.DatabaseTypeName()
	}

	out := make([]map[string]any, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		r := make(map[string]any, len(cols))
		for i, c := range cols {
			r[c] = normalize(vals[i], dbTypes[i])
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// zonelessLayout cae en los layouts locales de logs.ParseDate.
const zonelessLayout = "2006-01-02T15:04:05.999999999"

// normalize deja cada valor en un tipo que JSON serializa como espera el dominio.
// dbType es el nombre de tipo del driver ("NUMERIC", "TIMESTAMP", ...); puede venir vacío.
func normalize(v any, dbType string) any {
	dbType = strings.ToUpper(dbType)

	switch x := v.(type) {
	case []byte:
		return normalize(string(x), dbType)
	case string:
		// pgx devuelve NUMERIC como texto
		if isNumericType(dbType) && isJSONNumber(x) {
			return json.Number(x)
		}
		return x
	case time.Time:
		switch dbType {
		case "DATE":
			return x.Format(time.DateOnly)
		case "TIMESTAMP", "DATETIME":
			return x.Format(zonelessLayout)
		case "":
			if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 && x.Location() == time.UTC {
				return x.Format(time.DateOnly)
			}
		}
		return x.Format(time.RFC3339Nano)
	default:
		return x
	}
}

func isNumericType(dbType string) bool {
	switch dbType {
	case "NUMERIC", "DECIMAL":
		return true
	}
	return strings.HasPrefix(dbType, "NUMERIC(") || strings.HasPrefix(dbType, "DECIMAL(")
}

// isJSONNumber descarta NaN/Infinity y demás textos que no son número JSON.
func isJSONNumber(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

func decode(v any, out any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("sqlstore: encode rows: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("sqlstore: decode rows: %w", err)
	}
	return nil
}
