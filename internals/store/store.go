// file: internals/store/store.go
//
// Thin client over the record collections (classes, students, sessions).
// Collections are fetched whole or by a single equality predicate; there are
// no transactions and no concurrency tokens — concurrent writes to the same
// record are last-write-wins.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrStoreUnavailable: the backing service could not be reached or the
	// driver failed. Surfaced as 503; the triggering action is aborted, never
	// retried automatically.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrNotFound: referenced id does not exist (update/delete/get).
	ErrNotFound = errors.New("record not found")
	// ErrValidation: the store rejected the record (missing field, duplicate,
	// bad reference).
	ErrValidation = errors.New("record rejected by store")
)

// Record is any collection model; PKColumn names its primary key column.
type Record interface {
	PKColumn() string
}

// --- PG error mapping ---
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// Translate folds driver/gorm errors into the store taxonomy.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23502", "23503", "23505", "23514":
			// not-null / FK / unique / check violations
			return fmt.Errorf("%w: %s", ErrValidation, pgErr.Error())
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// HTTPStatus maps a store error to the status the API answers with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrValidation):
		return 422
	default:
		return 503
	}
}

/* =========================
   Collection operations
   ========================= */

// ListAll fetches every record of a collection. An empty collection yields an
// empty slice, not an error.
func ListAll[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var out []T
	if err := db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, Translate(err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// ListWhere fetches records matching one equality predicate. The column name
// comes from calling code, never from request input.
func ListWhere[T any](ctx context.Context, db *gorm.DB, column string, value any) ([]T, error) {
	var out []T
	if err := db.WithContext(ctx).Where(column+" = ?", value).Find(&out).Error; err != nil {
		return nil, Translate(err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// GetByID fetches one record by primary key.
func GetByID[T Record](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	var m T
	if err := db.WithContext(ctx).Where(m.PKColumn()+" = ?", id).First(&m).Error; err != nil {
		return nil, Translate(err)
	}
	return &m, nil
}

// Create inserts a record; the store assigns the id (gen_random_uuid).
func Create[T any](ctx context.Context, db *gorm.DB, rec *T) error {
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return Translate(err)
	}
	return nil
}

// UpdatePartial applies a column map to one record; ErrNotFound when the id
// does not exist.
func UpdatePartial[T Record](ctx context.Context, db *gorm.DB, id uuid.UUID, cols map[string]any) error {
	var m T
	res := db.WithContext(ctx).Model(&m).Where(m.PKColumn()+" = ?", id).Updates(cols)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one record. Not idempotent: a repeat delete on a missing id
// answers ErrNotFound.
func Delete[T Record](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	var m T
	res := db.WithContext(ctx).Where(m.PKColumn()+" = ?", id).Delete(&m)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAll counts a collection.
func CountAll[T any](ctx context.Context, db *gorm.DB) (int64, error) {
	var m T
	var n int64
	if err := db.WithContext(ctx).Model(&m).Count(&n).Error; err != nil {
		return 0, Translate(err)
	}
	return n, nil
}
