package handlers

import (
	"fmt"
	"strconv"

	"school-api/models"
	"school-api/store"
)

// NewStudentResource настраивает контроллер студентов: суррогатный целый
// ключ назначает база, group_id — необязательная ссылка на группу и при
// записи не проверяется.
func NewStudentResource(st store.EntityStore[models.Student]) *Resource[models.Student] {
	return NewResource(Descriptor[models.Student]{
		Singular: "student",
		Filters:  []string{"first_name", "last_name", "group_id"},

		ParseID: func(raw string) (any, error) {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return nil, failWith(ErrInvalidField, "invalid student id: %s", raw)
			}
			return id, nil
		},

		Build: func(id any, fields Fields) (models.Student, error) {
			var s models.Student
			if id != nil {
				s.StudentID = id.(int)
			}
			if err := setStudentNames(&s, fields); err != nil {
				return models.Student{}, err
			}
			// group_id при создании не обязателен
			groupID, err := stringField(fields, "group_id")
			if err != nil {
				return models.Student{}, err
			}
			s.GroupID = groupID
			return s, nil
		},

		Apply: func(s *models.Student, fields Fields) error {
			if err := setStudentNames(s, fields); err != nil {
				return err
			}
			// при полной замене ключ group_id обязан присутствовать
			groupID, err := presentString(fields, "group_id")
			if err != nil {
				return err
			}
			s.GroupID = groupID
			return nil
		},

		IDOf: func(s *models.Student) any { return s.StudentID },
		Label: func(id any) string {
			return fmt.Sprintf("student with id=%v", id)
		},
	}, st)
}

func setStudentNames(s *models.Student, fields Fields) error {
	firstName, err := requiredString(fields, "first_name")
	if err != nil {
		return err
	}
	lastName, err := requiredString(fields, "last_name")
	if err != nil {
		return err
	}
	s.FirstName = firstName
	s.LastName = lastName
	return nil
}
