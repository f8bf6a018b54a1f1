package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dairy-records/internal/domain/records"

	"github.com/jackc/pgx/v5/pgconn"
)

// metaColumns van al final de cada tabla, en este orden.
var metaColumns = []string{"active", "created_by", "created_at", "updated_at"}

const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

// table concentra el SQL que es igual en todas las tablas de registros. Cada repo
// define columnas, cómo sacar los valores de su modelo y cómo escanear una fila.
// columns empieza por id y no incluye las de meta; values y scan sí las incluyen
// (con metaValues / metaDest al final).
type table[T records.Record] struct {
	db      *sql.DB
	name    string
	columns []string
	// dateCol es la expresión DATE de RecordDate (rango from/to y orden).
	dateCol string
	search  []string
	values  func(T) []any
	scan    func(scanner) (T, error)
}

func (t table[T]) allColumns() []string {
	return append(append([]string{}, t.columns...), metaColumns...)
}

func metaValues(m records.Meta) []any {
	return []any{m.Active, m.CreatedBy, m.CreatedAt, m.UpdatedAt}
}

func metaDest(m *records.Meta) []any {
	return []any{&m.Active, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt}
}

func placeholders(from, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ps, ",")
}

func (t table[T]) create(ctx context.Context, item T) error {
	cols := t.allColumns()
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, strings.Join(cols, ", "), placeholders(1, len(cols)))
	_, err := t.db.ExecContext(ctx, q, t.values(item)...)
	return t.mapErr(err)
}

// update reescribe la fila entera salvo id, created_by y created_at.
func (t table[T]) update(ctx context.Context, item T) error {
	cols := t.allColumns()
	values := t.values(item)

	args := []any{values[0]} // id
	sets := make([]string, 0, len(cols))
	for i, c := range cols {
		if c == "id" || c == "created_by" || c == "created_at" {
			continue
		}
		args = append(args, values[i])
		sets = append(sets, fmt.Sprintf("%s = $%d", c, len(args)))
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", t.name, strings.Join(sets, ", "))

	res, err := t.db.ExecContext(ctx, q, args...)
	if err != nil {
		return t.mapErr(err)
	}
	return requireRow(res)
}

func (t table[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, records.ErrNotFound
	}

	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", strings.Join(t.allColumns(), ", "), t.name)
	item, err := t.scan(t.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, records.ErrNotFound
		}
		return zero, err
	}
	return item, nil
}

func (t table[T]) delete(ctx context.Context, id string) error {
	res, err := t.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.name), strings.TrimSpace(id))
	if err != nil {
		return err
	}
	return requireRow(res)
}

// list aplica q / from / to / active y ordena igual que records.Sort. No aplica limit:
// el servicio filtra status derivados antes de paginar.
func (t table[T]) list(ctx context.Context, f records.ListFilter) ([]T, error) {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("SELECT %s FROM %s WHERE TRUE", strings.Join(t.allColumns(), ", "), t.name))

	args := []any{}
	argN := 1

	if f.Active != nil {
		sb.WriteString(fmt.Sprintf(" AND active = $%d", argN))
		args = append(args, *f.Active)
		argN++
	}
	if f.From != nil {
		sb.WriteString(fmt.Sprintf(" AND %s >= $%d::date", t.dateCol, argN))
		args = append(args, records.FormatDate(*f.From))
		argN++
	}
	if f.To != nil {
		sb.WriteString(fmt.Sprintf(" AND %s <= $%d::date", t.dateCol, argN))
		args = append(args, records.FormatDate(*f.To))
		argN++
	}
	if q := strings.TrimSpace(f.Query); q != "" && len(t.search) > 0 {
		sb.WriteString(fmt.Sprintf(` AND concat_ws(' ', %s) ILIKE $%d ESCAPE '\'`, strings.Join(t.search, ", "), argN))
		args = append(args, "%"+escapeLike(q)+"%")
	}

	sb.WriteString(fmt.Sprintf(` ORDER BY %s DESC, id COLLATE "C" ASC`, t.dateCol))

	rows, err := t.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (t table[T]) ids(ctx context.Context) ([]string, error) {
	rows, err := t.db.QueryContext(ctx, fmt.Sprintf(`SELECT id FROM %s ORDER BY id COLLATE "C"`, t.name))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (t table[T]) mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return records.Conflict("%s: duplicate row (%s)", t.name, pgErr.ConstraintName)
	}
	return err
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
