package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"school-api/store"
)

// memStore — потокобезопасное хранилище в памяти для тестов контроллера.
// Считает обращения, чтобы проверять, что отклоненные запросы не трогают базу.
type memStore[T any] struct {
	mu         sync.Mutex
	rows       []T
	idOf       func(*T) any
	assign     func(*T, int) // назначение ключа базой; nil — ключ задает клиент
	less       func(a, b *T) bool
	next       int
	calls      int
	failCommit bool
}

func (m *memStore[T]) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *memStore[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *memStore[T]) find(id any) int {
	for i := range m.rows {
		if m.idOf(&m.rows[i]) == id {
			return i
		}
	}
	return -1
}

func (m *memStore[T]) Get(ctx context.Context, id any) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if i := m.find(id); i >= 0 {
		rec := m.rows[i]
		return &rec, nil
	}
	return nil, store.ErrNotFound
}

func (m *memStore[T]) List(ctx context.Context, filter map[string]any) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	var out []T
	for i := range m.rows {
		if matches(&m.rows[i], filter) {
			out = append(out, m.rows[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return m.less(&out[i], &out[j]) })
	return out, nil
}

func (m *memStore[T]) Exists(ctx context.Context, id any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.find(id) >= 0, nil
}

func (m *memStore[T]) Insert(ctx context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.assign != nil {
		m.next++
		m.assign(rec, m.next)
	}
	// уникальное ограничение ключа
	if m.find(m.idOf(rec)) >= 0 {
		return store.ErrDuplicateKey
	}
	m.rows = append(m.rows, *rec)
	return nil
}

func (m *memStore[T]) Update(ctx context.Context, id any, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	i := m.find(id)
	if i < 0 {
		return store.ErrNotFound
	}
	newID := m.idOf(rec)
	if newID != id {
		if m.find(newID) >= 0 {
			return store.ErrDuplicateKey
		}
	}
	m.rows[i] = *rec
	return nil
}

func (m *memStore[T]) Delete(ctx context.Context, id any) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	i := m.find(id)
	if i < 0 {
		return 0, nil
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return 1, nil
}

func (m *memStore[T]) Batch(ctx context.Context, fn func(tx store.EntityStore[T]) error) error {
	m.mu.Lock()
	m.calls++
	snapshot := append([]T(nil), m.rows...)
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.rows = snapshot
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCommit {
		m.rows = snapshot
		return fmt.Errorf("%w: commit failed", store.ErrStoreFailure)
	}
	return nil
}

// matches сравнивает строку с фильтром через ее JSON-представление
func matches[T any](rec *T, filter map[string]any) bool {
	if len(filter) == 0 {
		return true
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return false
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}
	for field, want := range filter {
		if fmt.Sprint(doc[field]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
