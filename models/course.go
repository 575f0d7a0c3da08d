package models

type Course struct {
	CourseName  string `json:"course_name" gorm:"column:course_name;primaryKey;size:40"`
	Description string `json:"description" gorm:"column:description;size:40"`
}

func (Course) TableName() string {
	return "courses"
}
