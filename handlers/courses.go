package handlers

import (
	"fmt"
	"unicode/utf8"

	"school-api/models"
	"school-api/store"
)

// NewCourseResource настраивает контроллер курсов: ключом служит
// course_name, который обязан прийти от клиента — в пути или в теле.
// Ключ description обязателен в теле, значение может быть пустым.
func NewCourseResource(st store.EntityStore[models.Course]) *Resource[models.Course] {
	return NewResource(Descriptor[models.Course]{
		Singular: "course",
		Filters:  []string{"course_name", "description"},

		ParseID: parseNameID("course_name"),

		IdentityOf: func(fields Fields) (any, error) {
			name, err := requiredString(fields, "course_name")
			if err != nil {
				return nil, err
			}
			return name, nil
		},

		Build: func(id any, fields Fields) (models.Course, error) {
			description, err := presentString(fields, "description")
			if err != nil {
				return models.Course{}, err
			}
			return models.Course{
				CourseName:  id.(string),
				Description: description,
			}, nil
		},

		Apply: func(c *models.Course, fields Fields) error {
			description, err := presentString(fields, "description")
			if err != nil {
				return err
			}
			c.Description = description
			// переименование курса допускается отдельным необязательным ключом
			if _, ok := fields["course_name"]; ok {
				name, err := requiredString(fields, "course_name")
				if err != nil {
					return err
				}
				c.CourseName = name
			}
			return nil
		},

		IDOf: func(c *models.Course) any { return c.CourseName },
		Label: func(id any) string {
			return fmt.Sprintf("course %v", id)
		},
	}, st)
}

// parseNameID проверяет строковый ключ из пути под ограничения колонок
func parseNameID(field string) func(raw string) (any, error) {
	return func(raw string) (any, error) {
		if raw == "" {
			return nil, failWith(ErrInvalidField, "field %s must not be empty", field)
		}
		if utf8.RuneCountInString(raw) > maxFieldLen {
			return nil, failWith(ErrInvalidField, "field %s must be at most %d characters", field, maxFieldLen)
		}
		return raw, nil
	}
}
