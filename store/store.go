package store

import (
	"context"
	"errors"
)

// Ошибки уровня хранилища. Обработчики сопоставляют их с HTTP статусами.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("record already exists")
	ErrStoreFailure = errors.New("store failure")
)

// EntityStore — интерфейс доступа к одной таблице. Ядро API не знает,
// чем он реализован: в проде это GORM поверх PostgreSQL, в тестах — память.
type EntityStore[T any] interface {
	// Get возвращает строку по ключу, ErrNotFound если ее нет.
	Get(ctx context.Context, id any) (*T, error)

	// List возвращает строки по точному совпадению всех полей фильтра,
	// упорядоченные по ключу. Пустой фильтр — полная выборка.
	List(ctx context.Context, filter map[string]any) ([]T, error)

	// Exists сообщает, занят ли ключ.
	Exists(ctx context.Context, id any) (bool, error)

	// Insert добавляет строку. Конфликт ключа — ErrDuplicateKey.
	Insert(ctx context.Context, rec *T) error

	// Update полностью перезаписывает строку с данным ключом.
	Update(ctx context.Context, id any, rec *T) error

	// Delete удаляет строку по ключу и возвращает число удаленных строк.
	Delete(ctx context.Context, id any) (int64, error)

	// Batch выполняет fn в одной транзакции: один commit на весь пакет.
	// Ошибка из fn или из commit откатывает все вставки пакета.
	Batch(ctx context.Context, fn func(tx EntityStore[T]) error) error
}
