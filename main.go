package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"school-api/config"
	"school-api/database"
	"school-api/handlers"
	"school-api/models"
	"school-api/store"
)

func main() {
	seed := flag.Bool("seed", false, "generate test data before starting the server")
	flag.Parse()

	log.Println("🚀 Starting School REST API server...")

	// Загрузка конфигурации
	cfg := config.Load()
	log.Printf("📋 Configuration loaded: Server Port %s", cfg.ServerPort)

	// Инициализация подключения к базе данных
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatal("❌ Error initializing database:", err)
	}

	// Получаем низкоуровневое соединение для закрытия
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("❌ Error getting SQL DB:", err)
	}
	defer sqlDB.Close()

	if *seed {
		if err := database.Seed(cfg); err != nil {
			log.Fatal("❌ Error seeding database:", err)
		}
		if err := database.FixSequence(db); err != nil {
			log.Printf("⚠️ Warning: could not fix sequence: %v", err)
		}
	}

	// Контроллеры: по одному универсальному Resource на сущность
	students := handlers.NewStudentResource(store.NewGormStore[models.Student](db, "student_id"))
	courses := handlers.NewCourseResource(store.NewGormStore[models.Course](db, "course_name"))
	groups := handlers.NewGroupResource(store.NewGormStore[models.Group](db, "group_name"))

	r := handlers.NewRouter(students, courses, groups)
	r.Use(loggingMiddleware)

	serverAddr := ":" + cfg.ServerPort
	log.Printf("✅ Server successfully started on %s", serverAddr)
	log.Printf("🌐 Available at: http://localhost%s", serverAddr)

	log.Fatal(http.ListenAndServe(serverAddr, r))
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Создаем обертку для response writer для захвата статуса
		rw := &responseWriter{w, http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Printf("📨 %s %s - %d (%v)", r.Method, r.URL.Path, rw.statusCode, duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
