package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringFieldLengthLimit(t *testing.T) {
	// лимит VARCHAR(40) меряется в символах: 40 кириллических букв —
	// это 80 байт, но значение валидно
	value, err := presentString(Fields{"description": strings.Repeat("я", maxFieldLen)}, "description")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("я", maxFieldLen), value)

	_, err = presentString(Fields{"description": strings.Repeat("я", maxFieldLen+1)}, "description")
	require.ErrorIs(t, err, ErrInvalidField)

	_, err = requiredString(Fields{"first_name": strings.Repeat("a", maxFieldLen+1)}, "first_name")
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestStringFieldTypes(t *testing.T) {
	value, err := stringField(Fields{"group_id": "cs_01"}, "group_id")
	require.NoError(t, err)
	assert.Equal(t, "cs_01", value)

	// отсутствующий или null ключ — пустая строка без ошибки
	value, err = stringField(Fields{}, "group_id")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	value, err = stringField(Fields{"group_id": nil}, "group_id")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	_, err = stringField(Fields{"group_id": 42.0}, "group_id")
	require.ErrorIs(t, err, ErrInvalidField)
}

func TestRequiredString(t *testing.T) {
	_, err := requiredString(Fields{}, "first_name")
	require.ErrorIs(t, err, ErrMissingField)

	_, err = requiredString(Fields{"first_name": ""}, "first_name")
	require.ErrorIs(t, err, ErrMissingField)

	// presentString требует ключ, но допускает пустое значение
	value, err := presentString(Fields{"group_id": ""}, "group_id")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestParseNameIDLengthLimit(t *testing.T) {
	parse := parseNameID("course_name")

	id, err := parse(strings.Repeat("я", maxFieldLen))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("я", maxFieldLen), id)

	_, err = parse(strings.Repeat("я", maxFieldLen+1))
	require.ErrorIs(t, err, ErrInvalidField)
}
