package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// GormStore реализует EntityStore поверх GORM/PostgreSQL.
type GormStore[T any] struct {
	db       *gorm.DB
	idColumn string
}

func NewGormStore[T any](db *gorm.DB, idColumn string) *GormStore[T] {
	return &GormStore[T]{db: db, idColumn: idColumn}
}

func (s *GormStore[T]) Get(ctx context.Context, id any) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).Where(s.idColumn+" = ?", id).First(&rec).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (s *GormStore[T]) List(ctx context.Context, filter map[string]any) ([]T, error) {
	query := s.db.WithContext(ctx).Model(new(T))
	if len(filter) > 0 {
		query = query.Where(filter)
	}

	var recs []T
	if err := query.Order(s.idColumn + " ASC").Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

func (s *GormStore[T]) Exists(ctx context.Context, id any) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(new(T)).
		Where(s.idColumn+" = ?", id).Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (s *GormStore[T]) Insert(ctx context.Context, rec *T) error {
	return translate(s.db.WithContext(ctx).Create(rec).Error)
}

func (s *GormStore[T]) Update(ctx context.Context, id any, rec *T) error {
	// обновление картой колонок перезаписывает все поля явно, включая
	// пустые значения и сам ключ (переименование курса или группы)
	err := s.db.WithContext(ctx).Model(new(T)).
		Where(s.idColumn+" = ?", id).
		Updates(columnMap(rec)).Error
	return translate(err)
}

// columnMap раскладывает строку в карту колонка -> значение по тегам gorm
func columnMap(rec any) map[string]any {
	v := reflect.ValueOf(rec).Elem()
	t := v.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		for _, part := range strings.Split(t.Field(i).Tag.Get("gorm"), ";") {
			if column, ok := strings.CutPrefix(part, "column:"); ok {
				out[column] = v.Field(i).Interface()
			}
		}
	}
	return out
}

func (s *GormStore[T]) Delete(ctx context.Context, id any) (int64, error) {
	result := s.db.WithContext(ctx).Where(s.idColumn+" = ?", id).Delete(new(T))
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

func (s *GormStore[T]) Batch(ctx context.Context, fn func(tx EntityStore[T]) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore[T]{db: tx, idColumn: s.idColumn})
	})
	return translate(err)
}

// translate сопоставляет ошибки GORM и PostgreSQL с ошибками хранилища
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateKey) || errors.Is(err, ErrStoreFailure) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateKey
	}

	return fmt.Errorf("%w: %v", ErrStoreFailure, err)
}
