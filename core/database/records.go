package database

import (
	"context"
	"fmt"
	"reflect"

	"model-binder/core/binding"
	"model-binder/core/logger"
	"model-binder/core/request"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Row is one database row bound into T.
type Row[T any] struct {
	Value    T                 `json:"value"`
	Problems []binding.Problem `json:"problems"`
}

// Records runs a raw query and binds every row into T, keyed by column
// name. A row that fails to bind cleanly is still returned together with
// its problems; only query and scan failures are errors. NULL columns are
// treated as absent.
func Records[T any](ctx context.Context, db *gorm.DB, log *zap.Logger, query string, args ...any) ([]Row[T], error) {
	return scan(ctx, db, log, query, args, func(data request.Data) (T, []binding.Problem, error) {
		return binding.Bind[T](data, log)
	})
}

// RecordsType is Records for a target type only known at runtime.
func RecordsType(ctx context.Context, db *gorm.DB, log *zap.Logger, t reflect.Type, query string, args ...any) ([]Row[any], error) {
	return scan(ctx, db, log, query, args, func(data request.Data) (any, []binding.Problem, error) {
		return binding.BindType(data, t, log)
	})
}

func scan[T any](ctx context.Context, db *gorm.DB, log *zap.Logger, query string, args []any, bind func(request.Data) (T, []binding.Problem, error)) ([]Row[T], error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []Row[T]
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			record[col] = values[i]
		}

		value, problems, err := bind(request.FromRecord(record))
		if err != nil {
			return nil, err
		}
		logger.LogProblems(log.With(zap.Int("row", len(out))), "Record bound with problem", problems)
		out = append(out, Row[T]{Value: value, Problems: problems})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return out, nil
}
