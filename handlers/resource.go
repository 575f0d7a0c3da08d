package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"school-api/store"
)

// Descriptor описывает одну сущность для универсального контроллера:
// как разбирать идентификатор, как строить строку из полей запроса и как
// сущность называется в сообщениях. Логика Create/Get/Update/Delete общая
// для студентов, курсов и групп и живет в Resource.
type Descriptor[T any] struct {
	// Singular — имя сущности для логов ("student", "course", "group")
	Singular string

	// Filters — поля, допустимые в query-фильтрах списка
	Filters []string

	// ParseID разбирает идентификатор из сегмента пути
	ParseID func(raw string) (any, error)

	// IdentityOf извлекает идентификатор из полей тела; nil для сущностей
	// с ключом, назначаемым базой
	IdentityOf func(fields Fields) (any, error)

	// Build собирает новую строку; id == nil, когда ключ назначает база
	Build func(id any, fields Fields) (T, error)

	// Apply полностью перезаписывает изменяемые поля существующей строки
	Apply func(rec *T, fields Fields) error

	// IDOf возвращает идентификатор строки (после вставки — назначенный)
	IDOf func(rec *T) any

	// Label — обозначение сущности в сообщениях, например "student with id=5"
	Label func(id any) string
}

// Resource — универсальный CRUD-контроллер одной сущности поверх EntityStore.
type Resource[T any] struct {
	desc  Descriptor[T]
	store store.EntityStore[T]
}

func NewResource[T any](desc Descriptor[T], st store.EntityStore[T]) *Resource[T] {
	return &Resource[T]{desc: desc, store: st}
}

// pathID разбирает идентификатор из пути; (nil, nil) — идентификатор не передан.
func (rs *Resource[T]) pathID(r *http.Request) (any, error) {
	raw, ok := mux.Vars(r)["id"]
	if !ok {
		return nil, nil
	}
	return rs.desc.ParseID(raw)
}

// List обрабатывает GET коллекции с опциональными фильтрами.
// Пустой результат — валидный ответ 200 с пустым списком.
func (rs *Resource[T]) List(w http.ResponseWriter, r *http.Request) {
	filter := BuildFilter(r.URL.Query(), rs.desc.Filters)

	recs, err := rs.store.List(r.Context(), filter)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if recs == nil {
		recs = []T{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// Get обрабатывает GET одного элемента по идентификатору.
func (rs *Resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := rs.pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	rec, err := rs.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeFailure(w, failWith(store.ErrNotFound, "%s not found", rs.desc.Label(id)))
			return
		}
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Create обрабатывает POST: один объект, массив объектов или объект для
// идентификатора из пути. Ошибки отдельных элементов не прерывают пакет;
// commit один на весь пакет.
func (rs *Resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pathID, err := rs.pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFailure(w, failWith(ErrMalformedPayload, "cannot read request body"))
		return
	}

	payload, err := ResolvePayload(body, pathID != nil)
	if err != nil {
		writeFailure(w, err)
		return
	}

	log.Printf("➕ Creating %s: %d item(s)", rs.desc.Singular, len(payload.Items))

	agg := &aggregator{}
	var itemErr error
	batchErr := rs.store.Batch(ctx, func(tx store.EntityStore[T]) error {
		for _, item := range payload.Items {
			msg, err := rs.createOne(ctx, tx, pathID, item.Fields)
			if err != nil {
				itemErr = err
				agg.fail(item.Index, err)
				continue
			}
			agg.ok(msg)
		}
		return nil
	})
	if batchErr != nil {
		// commit не прошел: ни одна вставка пакета не сохранена
		log.Printf("❌ Batch commit failed for %s: %v", rs.desc.Singular, batchErr)
		env := Envelope{}
		for _, item := range payload.Items {
			env.Errors = append(env.Errors, fmt.Sprintf("item %d: not committed", item.Index))
		}
		writeJSON(w, http.StatusInternalServerError, env)
		return
	}

	// для одиночного элемента отказ — это отказ всего запроса
	if payload.Single && itemErr != nil {
		writeFailure(w, itemErr)
		return
	}

	writeJSON(w, http.StatusCreated, agg.envelope(payload.Single))
}

func (rs *Resource[T]) createOne(ctx context.Context, tx store.EntityStore[T], pathID any, fields Fields) (string, error) {
	id := pathID
	if id == nil && rs.desc.IdentityOf != nil {
		var err error
		id, err = rs.desc.IdentityOf(fields)
		if err != nil {
			return "", err
		}
	}

	// проверка занятости ключа до вставки; гонку двух пакетов за один
	// ключ закрывает уникальное ограничение в базе
	if id != nil {
		exists, err := tx.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if exists {
			return "", failWith(store.ErrDuplicateKey, "%s already exists", rs.desc.Label(id))
		}
	}

	rec, err := rs.desc.Build(id, fields)
	if err != nil {
		return "", err
	}

	if err := tx.Insert(ctx, &rec); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return "", failWith(store.ErrDuplicateKey, "%s already exists", rs.desc.Label(rs.desc.IDOf(&rec)))
		}
		return "", err
	}
	return fmt.Sprintf("%s added", rs.desc.Label(rs.desc.IDOf(&rec))), nil
}

// Update обрабатывает PUT: полная замена изменяемых полей одной строки.
// Все изменяемые поля обязаны присутствовать в теле, иначе строка не
// меняется вовсе.
func (rs *Resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := rs.pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFailure(w, failWith(ErrMalformedPayload, "cannot read request body"))
		return
	}

	payload, err := ResolvePayload(body, true)
	if err != nil {
		writeFailure(w, err)
		return
	}

	rec, err := rs.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeFailure(w, failWith(store.ErrNotFound, "%s not found", rs.desc.Label(id)))
			return
		}
		writeFailure(w, err)
		return
	}

	if err := rs.desc.Apply(rec, payload.Items[0].Fields); err != nil {
		writeFailure(w, err)
		return
	}

	if err := rs.store.Update(ctx, id, rec); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			// переименование в занятый ключ
			writeFailure(w, failWith(store.ErrDuplicateKey, "%s already exists", rs.desc.Label(rs.desc.IDOf(rec))))
			return
		}
		writeFailure(w, err)
		return
	}

	log.Printf("🔄 Updated %s", rs.desc.Label(id))
	writeJSON(w, http.StatusOK, Envelope{
		Message: fmt.Sprintf("%s updated", rs.desc.Label(rs.desc.IDOf(rec))),
	})
}

// Delete обрабатывает DELETE одной строки: удаление по ключу со счетчиком,
// ноль удаленных строк — NotFound.
func (rs *Resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := rs.pathID(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	count, err := rs.store.Delete(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if count == 0 {
		writeFailure(w, failWith(store.ErrNotFound, "%s not found", rs.desc.Label(id)))
		return
	}

	log.Printf("🗑️ Deleted %s", rs.desc.Label(id))
	writeJSON(w, http.StatusOK, Envelope{
		Message: fmt.Sprintf("deleted %s", rs.desc.Label(id)),
	})
}
