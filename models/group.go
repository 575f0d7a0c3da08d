package models

type Group struct {
	GroupName string `json:"group_name" gorm:"column:group_name;primaryKey;size:40"`
}

func (Group) TableName() string {
	return "groups"
}
