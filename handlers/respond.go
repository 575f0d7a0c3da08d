package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"school-api/store"
)

// Ошибки уровня запроса. Вместе с ошибками хранилища образуют
// полный набор классов отказов API.
var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMissingField     = errors.New("missing field")
	ErrInvalidField     = errors.New("invalid field")
)

// apiError несет готовое для пользователя сообщение и класс ошибки,
// чтобы errors.Is продолжал работать при сопоставлении со статусом.
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func failWith(kind error, format string, args ...any) error {
	return &apiError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Envelope — единый формат ответа: message для успехов, errors для отказов.
// В пакетных ответах присутствуют оба ключа.
type Envelope struct {
	Message any      `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, ErrMalformedPayload),
		errors.Is(err, ErrMissingField),
		errors.Is(err, ErrInvalidField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

func writeFailure(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("❌ Internal error: %v", err)
		msg = "internal server error"
	}
	writeJSON(w, status, Envelope{Errors: []string{msg}})
}

// aggregator собирает исходы элементов пакета; порядок детерминирован,
// потому что элементы обрабатываются в порядке их индексов.
type aggregator struct {
	messages []string
	errors   []string
}

func (a *aggregator) ok(msg string) {
	a.messages = append(a.messages, msg)
}

func (a *aggregator) fail(index int, err error) {
	a.errors = append(a.errors, fmt.Sprintf("item %d: %s", index, err))
}

// envelope сворачивает исходы в ответ: для одиночного элемента message —
// строка, для пакета — список (как в исходном API).
func (a *aggregator) envelope(single bool) Envelope {
	env := Envelope{Errors: a.errors}
	switch {
	case single && len(a.messages) == 1:
		env.Message = a.messages[0]
	case len(a.messages) > 0:
		env.Message = a.messages
	}
	return env
}
