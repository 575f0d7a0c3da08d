package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"school-api/config"
	"school-api/models"
)

// InitDB открывает подключение к PostgreSQL и приводит схему к моделям
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Сначала независимые таблицы, потом зависимые
	if err := db.AutoMigrate(&models.Group{}, &models.Course{}, &models.Student{}); err != nil {
		return nil, fmt.Errorf("error migrating schema: %v", err)
	}

	// Исправляем последовательность, если она сбилась
	if err := FixSequence(db); err != nil {
		log.Printf("⚠️ Warning: could not fix sequence: %v", err)
	}

	log.Println("✅ Successfully connected to PostgreSQL, schema verified")
	return db, nil
}

// FixSequence выравнивает students_student_id_seq после вставок студентов
// с явным student_id, чтобы база не выдала занятый ключ
func FixSequence(db *gorm.DB) error {
	fixSeqSQL := `
    SELECT setval(
        'students_student_id_seq',
        COALESCE((SELECT MAX(student_id) FROM students), 0) + 1,
        false
    )`

	var next int64
	if err := db.Raw(fixSeqSQL).Scan(&next).Error; err != nil {
		return fmt.Errorf("error fixing sequence: %v", err)
	}

	log.Printf("✅ Students sequence fixed, next id will be: %d", next)
	return nil
}
