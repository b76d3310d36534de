// Package postgres реализует репозитории поверх pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteboard/internal/notes/ports/repositories"
	"noteboard/pkg/logger"
)

// Table описывает таблицу, в которой хранятся записи типа T.
type Table[T any] struct {
	// Name - имя таблицы.
	Name string
	// Columns - все колонки в порядке, в котором их читает Scan.
	Columns []string
	// Writable - колонки, которые можно передавать в Create и Update.
	Writable []string
	// Scan читает одну строку в новую запись.
	Scan func(row pgx.Row) (*T, error)
	// ID возвращает первичный ключ записи.
	ID func(record *T) int64
}

// Store реализует repositories.Repository[T] для одной таблицы.
type Store[T any] struct {
	table      Table[T]
	selectList string
	columns    map[string]struct{}
	writable   map[string]struct{}
}

// NewStore создает хранилище для таблицы.
func NewStore[T any](table Table[T]) *Store[T] {
	s := &Store[T]{
		table:      table,
		selectList: strings.Join(table.Columns, ", "),
		columns:    make(map[string]struct{}, len(table.Columns)),
		writable:   make(map[string]struct{}, len(table.Writable)),
	}
	for _, c := range table.Columns {
		s.columns[c] = struct{}{}
	}
	for _, c := range table.Writable {
		s.writable[c] = struct{}{}
	}
	return s
}

func (s *Store[T]) log(ctx context.Context, method string) *logger.Logger {
	return logger.Log(ctx).With(zap.String("repository", s.table.Name), zap.String("method", method))
}

// Create вставляет запись и возвращает ее вместе со значениями по умолчанию из БД.
func (s *Store[T]) Create(ctx context.Context, db repositories.DB, fields repositories.Fields) (*T, error) {
	log := s.log(ctx, "Create")

	names, err := s.sortedKeys(fields, s.writable)
	if err != nil {
		return nil, err
	}

	var query string
	args := make([]any, 0, len(names))
	if len(names) == 0 {
		query = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", s.table.Name, s.selectList)
	} else {
		placeholders := make([]string, len(names))
		for i, name := range names {
			placeholders[i] = "$" + strconv.Itoa(i+1)
			args = append(args, fields[name])
		}
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			s.table.Name, strings.Join(names, ", "), strings.Join(placeholders, ", "), s.selectList)
	}

	record, err := s.table.Scan(db.QueryRow(ctx, query, args...))
	if err != nil {
		log.Error(ctx, "failed to create record", zap.Error(err))
		return nil, fmt.Errorf("failed to create %s record: %w", s.table.Name, err)
	}

	log.Debug(ctx, "record created", zap.Int64("id", s.table.ID(record)))
	return record, nil
}

// Get возвращает первую по id запись, удовлетворяющую фильтру.
func (s *Store[T]) Get(ctx context.Context, db repositories.DB, filter repositories.Filter) (*T, error) {
	log := s.log(ctx, "Get")

	where, args, err := s.where(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id LIMIT 1", s.selectList, s.table.Name, where)

	record, err := s.table.Scan(db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "record not found", zap.Any("filter", filter))
			return nil, repositories.ErrRecordNotFound
		}
		log.Error(ctx, "failed to get record", zap.Error(err))
		return nil, fmt.Errorf("failed to get %s record: %w", s.table.Name, err)
	}

	return record, nil
}

// Find возвращает все записи, удовлетворяющие фильтру, упорядоченные по id.
func (s *Store[T]) Find(ctx context.Context, db repositories.DB, filter repositories.Filter) ([]*T, error) {
	log := s.log(ctx, "Find")

	where, args, err := s.where(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id", s.selectList, s.table.Name, where)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to list records", zap.Error(err))
		return nil, fmt.Errorf("failed to list %s records: %w", s.table.Name, err)
	}
	defer rows.Close()

	records := make([]*T, 0)
	for rows.Next() {
		record, err := s.table.Scan(rows)
		if err != nil {
			log.Error(ctx, "failed to scan record", zap.Error(err))
			return nil, fmt.Errorf("failed to scan %s record: %w", s.table.Name, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating %s rows: %w", s.table.Name, err)
	}

	return records, nil
}

// GetAll возвращает все записи таблицы.
func (s *Store[T]) GetAll(ctx context.Context, db repositories.DB) ([]*T, error) {
	return s.Find(ctx, db, nil)
}

// Update записывает fields и выставляет updated_at.
func (s *Store[T]) Update(ctx context.Context, db repositories.DB, record *T, fields repositories.Fields) (*T, error) {
	log := s.log(ctx, "Update")

	names, err := s.sortedKeys(fields, s.writable)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return record, nil
	}

	id := s.table.ID(record)
	assignments := make([]string, 0, len(names)+1)
	args := make([]any, 0, len(names)+1)
	for i, name := range names {
		assignments = append(assignments, name+" = $"+strconv.Itoa(i+1))
		args = append(args, fields[name])
	}
	assignments = append(assignments, repositories.ColumnUpdatedAt+" = now()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		s.table.Name, strings.Join(assignments, ", "), len(args), s.selectList)

	updated, err := s.table.Scan(db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "record not found for update", zap.Int64("id", id))
			return nil, repositories.ErrRecordNotFound
		}
		log.Error(ctx, "failed to update record", zap.Error(err))
		return nil, fmt.Errorf("failed to update %s record: %w", s.table.Name, err)
	}

	return updated, nil
}

// Delete удаляет запись по id.
func (s *Store[T]) Delete(ctx context.Context, db repositories.DB, record *T) error {
	log := s.log(ctx, "Delete")

	id := s.table.ID(record)
	result, err := db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", s.table.Name), id)
	if err != nil {
		log.Error(ctx, "failed to delete record", zap.Error(err))
		return fmt.Errorf("failed to delete %s record: %w", s.table.Name, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "record not found for deletion", zap.Int64("id", id))
		return repositories.ErrRecordNotFound
	}

	return nil
}

// where строит условие WHERE с плейсхолдерами, начиная с $1.
func (s *Store[T]) where(filter repositories.Filter) (string, []any, error) {
	names, err := s.sortedKeys(filter, s.columns)
	if err != nil {
		return "", nil, err
	}
	if len(names) == 0 {
		return "", nil, nil
	}

	conditions := make([]string, 0, len(names))
	args := make([]any, 0, len(names))
	for _, name := range names {
		value := filter[name]
		if isNull(value) {
			conditions = append(conditions, name+" IS NULL")
			continue
		}
		args = append(args, value)
		conditions = append(conditions, name+" = $"+strconv.Itoa(len(args)))
	}

	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

// sortedKeys проверяет имена колонок по allowed и возвращает их в стабильном порядке.
func (s *Store[T]) sortedKeys(values map[string]any, allowed map[string]struct{}) ([]string, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		if _, ok := allowed[name]; !ok {
			return nil, fmt.Errorf("%w: %s.%s", repositories.ErrUnknownColumn, s.table.Name, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func isNull(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
