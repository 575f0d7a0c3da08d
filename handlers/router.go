package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"school-api/middleware"
	"school-api/models"
)

// NewRouter собирает все маршруты API. Версия в пути проверяется
// middleware до любого обращения к базе данных.
func NewRouter(students *Resource[models.Student], courses *Resource[models.Course], groups *Resource[models.Group]) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.CORS)

	r.HandleFunc("/", rootHandler).Methods("GET")
	r.HandleFunc("/health", healthHandler).Methods("GET")

	api := r.PathPrefix("/api/{version}").Subrouter()
	api.Use(middleware.Version)

	register(api, "students", students)
	register(api, "courses", courses)
	register(api, "groups", groups)

	return r
}

func register[T any](api *mux.Router, path string, rs *Resource[T]) {
	api.HandleFunc("/"+path+"/", rs.List).Methods("GET")
	api.HandleFunc("/"+path+"/", rs.Create).Methods("POST")
	api.HandleFunc("/"+path+"/{id}/", rs.Get).Methods("GET")
	api.HandleFunc("/"+path+"/{id}/", rs.Create).Methods("POST")
	api.HandleFunc("/"+path+"/{id}/", rs.Update).Methods("PUT")
	api.HandleFunc("/"+path+"/{id}/", rs.Delete).Methods("DELETE")
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	response := map[string]any{
		"service": "school-api",
		"version": middleware.SupportedVersion,
		"endpoints": []string{
			"/api/v1/students/",
			"/api/v1/students/{id}/",
			"/api/v1/courses/",
			"/api/v1/courses/{course_name}/",
			"/api/v1/groups/",
			"/api/v1/groups/{group_name}/",
		},
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	response := map[string]any{
		"status":    "ok",
		"service":   "school-api",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}
