package handlers

import (
	"fmt"

	"school-api/models"
	"school-api/store"
)

// NewGroupResource настраивает контроллер групп: единственное поле —
// ключ group_name, который задает клиент.
func NewGroupResource(st store.EntityStore[models.Group]) *Resource[models.Group] {
	return NewResource(Descriptor[models.Group]{
		Singular: "group",
		Filters:  []string{"group_name"},

		ParseID: parseNameID("group_name"),

		IdentityOf: func(fields Fields) (any, error) {
			name, err := requiredString(fields, "group_name")
			if err != nil {
				return nil, err
			}
			return name, nil
		},

		Build: func(id any, fields Fields) (models.Group, error) {
			return models.Group{GroupName: id.(string)}, nil
		},

		Apply: func(g *models.Group, fields Fields) error {
			// переименование — единственная возможная правка группы
			name, err := requiredString(fields, "group_name")
			if err != nil {
				return err
			}
			g.GroupName = name
			return nil
		},

		IDOf: func(g *models.Group) any { return g.GroupName },
		Label: func(id any) string {
			return fmt.Sprintf("group %v", id)
		},
	}, st)
}
