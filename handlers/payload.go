package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fields — декодированный JSON-объект одного элемента запроса.
type Fields map[string]any

// Item — одна операция пакета с исходной позицией в теле запроса,
// чтобы сообщения об ошибках ссылались на "item i" однозначно.
type Item struct {
	Index  int
	Fields Fields
}

// Payload — нормализованное тело запроса: один элемент или упорядоченный
// пакет. Дальше по коду форма сырого тела больше нигде не разбирается.
type Payload struct {
	Items  []Item
	Single bool
}

// ResolvePayload классифицирует тело запроса.
// Идентификатор в пути => ровно один объект с полями этой сущности;
// объект => один элемент; массив объектов => N элементов в исходном порядке;
// любая другая форма => MalformedPayload.
func ResolvePayload(body []byte, hasPathID bool) (*Payload, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty request body", ErrMalformedPayload)
	}

	switch trimmed[0] {
	case '{':
		var fields Fields
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON object", ErrMalformedPayload)
		}
		return &Payload{Items: []Item{{Index: 0, Fields: fields}}, Single: true}, nil

	case '[':
		if hasPathID {
			return nil, fmt.Errorf("%w: expected a single object for this identity", ErrMalformedPayload)
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON list", ErrMalformedPayload)
		}
		items := make([]Item, 0, len(elems))
		for i, elem := range elems {
			e := bytes.TrimSpace(elem)
			if len(e) == 0 || e[0] != '{' {
				return nil, fmt.Errorf("%w: item %d is not an object", ErrMalformedPayload, i)
			}
			var fields Fields
			if err := json.Unmarshal(e, &fields); err != nil {
				return nil, fmt.Errorf("%w: item %d is not an object", ErrMalformedPayload, i)
			}
			items = append(items, Item{Index: i, Fields: fields})
		}
		return &Payload{Items: items}, nil
	}

	return nil, fmt.Errorf("%w: body must be an object or a list of objects", ErrMalformedPayload)
}
