package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePayloadSingleObject(t *testing.T) {
	payload, err := ResolvePayload([]byte(`{"first_name": "Liam"}`), false)
	require.NoError(t, err)
	assert.True(t, payload.Single)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, 0, payload.Items[0].Index)
	assert.Equal(t, "Liam", payload.Items[0].Fields["first_name"])
}

func TestResolvePayloadList(t *testing.T) {
	payload, err := ResolvePayload([]byte(`[{"a": 1}, {"b": 2}, {"c": 3}]`), false)
	require.NoError(t, err)
	assert.False(t, payload.Single)
	require.Len(t, payload.Items, 3)
	// элементы сохраняют исходные позиции
	for i, item := range payload.Items {
		assert.Equal(t, i, item.Index)
	}
}

func TestResolvePayloadPathIdentity(t *testing.T) {
	// идентификатор в пути допускает только одиночный объект
	payload, err := ResolvePayload([]byte(`{"description": "Mathematics"}`), true)
	require.NoError(t, err)
	assert.True(t, payload.Single)

	_, err = ResolvePayload([]byte(`[{"description": "Mathematics"}]`), true)
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestResolvePayloadMalformed(t *testing.T) {
	cases := map[string]string{
		"scalar":         `42`,
		"string":         `"text"`,
		"null":           `null`,
		"empty":          ``,
		"whitespace":     `   `,
		"broken object":  `{"a": `,
		"broken list":    `[{"a": 1}`,
		"scalar in list": `[{"a": 1}, 2]`,
		"null in list":   `[null]`,
	}
	for name, body := range cases {
		_, err := ResolvePayload([]byte(body), false)
		assert.ErrorIs(t, err, ErrMalformedPayload, name)
	}
}
