package models

type Student struct {
	StudentID int    `json:"student_id" gorm:"column:student_id;primaryKey;autoIncrement"`
	GroupID   string `json:"group_id" gorm:"column:group_id;size:40"`
	FirstName string `json:"first_name" gorm:"column:first_name;not null;size:40"`
	LastName  string `json:"last_name" gorm:"column:last_name;not null;size:40"`
}

func (Student) TableName() string {
	return "students"
}
