package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/shared/constant"
	"tavola/shared/dto"
	"tavola/shared/logger"

	"github.com/jmoiron/sqlx"
)

var errMissingFilter = errors.New("update without a filter")

// column is one selectable field. Fields tagged with `table` come from a joined
// table and are not written on insert.
type column struct {
	name  string
	table string
	alias string
}

func (c column) selector() string {
	switch {
	case c.table == constant.Empty:
		return c.name
	case c.alias != constant.Empty:
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

type namedExecer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// Repository maps T onto one table through its `db` tags. Embedded structs such as
// model.Metadata are flattened.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	columns       []column
	insertColumns []string
	join          string
}

type joiner interface {
	GetJoinQuery() string
}

func NewRepository[T any](entityName, tableName string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := columnsOf(tableName, reflect.TypeOf(zero))

	join := constant.Empty
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		columns:       columns,
		insertColumns: insertColumns,
		join:          join,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s LIMIT 1", repo.selectList(columns), repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to prepare %s query: %w", repo.entity, err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model, nil
	case err != nil:
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get %s: %w", repo.entity, err)
	}

	return model, nil
}

// GetAll lists rows matching filter. Sorting applies when both SortBy and SortDir are
// set; a positive Limit pages the result.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := whereClause(filter)

	var tail strings.Builder

	if params.SortBy != constant.Empty && params.SortDir != constant.Empty {
		fmt.Fprintf(&tail, " ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		tail.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			tail.WriteString(" OFFSET :offset")
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s%s", repo.selectList(columns), repo.table, repo.join, where, tail.String())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare %s query: %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list %s: %w", repo.entity, err)
	}

	return models, nil
}

// InsertTx writes one row inside tx.
func (repo *Repository[T]) InsertTx(ctx context.Context, tx *sqlx.Tx, model T) error {
	ctx, scope := repo.scope(ctx, "InsertTx")
	defer scope.End()

	return repo.insert(ctx, scope, tx, model)
}

// InsertBulkTx writes every model with a single multi-row INSERT inside tx.
func (repo *Repository[T]) InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []T) error {
	ctx, scope := repo.scope(ctx, "InsertBulkTx")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	return repo.insert(ctx, scope, tx, models)
}

func (repo *Repository[T]) insert(ctx context.Context, scope otel.Scope, exec namedExecer, arg any) error {
	placeholders := make([]string, len(repo.insertColumns))
	for i, col := range repo.insertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert %s: %w", repo.entity, err)
	}

	return nil
}

// Update sets the given columns on every row matching filter. An empty filter is
// refused rather than updating the whole table.
func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	where, args := whereClause(filter)
	if where == constant.Empty {
		return errMissingFilter
	}

	assignments := make([]string, 0, len(fields))
	for _, col := range slices.Sorted(maps.Keys(fields)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, fields)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update %s: %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) selectList(only []string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		selected = append(selected, col.selector())
	}

	return strings.Join(selected, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == constant.Empty {
		return constant.Empty, map[string]any{}
	}

	return "WHERE " + where, args
}

func columnsOf(table string, typ reflect.Type) (columns []column, insertColumns []string) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := columnsOf(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		name := field.Tag.Get("db")
		if name == constant.Empty || name == "-" {
			continue
		}

		source := field.Tag.Get("table")
		if source == constant.Empty {
			source = table
			insertColumns = append(insertColumns, name)
		}

		if alias := field.Tag.Get("column"); alias != constant.Empty {
			columns = append(columns, column{name: alias, table: source, alias: name})

			continue
		}

		columns = append(columns, column{name: name, table: source})
	}

	return columns, insertColumns
}
