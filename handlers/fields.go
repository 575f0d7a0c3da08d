package handlers

import "unicode/utf8"

// Все текстовые колонки в схеме — VARCHAR(40)
const maxFieldLen = 40

// stringField достает необязательное строковое поле; отсутствующий ключ —
// пустая строка без ошибки.
func stringField(fields Fields, name string) (string, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return "", nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", failWith(ErrInvalidField, "field %s must be a string", name)
	}
	// VARCHAR(40) считает символы, не байты
	if utf8.RuneCountInString(value) > maxFieldLen {
		return "", failWith(ErrInvalidField, "field %s must be at most %d characters", name, maxFieldLen)
	}
	return value, nil
}

// presentString требует наличия ключа, но допускает пустое значение.
func presentString(fields Fields, name string) (string, error) {
	if _, ok := fields[name]; !ok {
		return "", failWith(ErrMissingField, "field %s is required", name)
	}
	return stringField(fields, name)
}

// requiredString требует наличия ключа и непустого значения.
func requiredString(fields Fields, name string) (string, error) {
	value, err := presentString(fields, name)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", failWith(ErrMissingField, "field %s must not be empty", name)
	}
	return value, nil
}
