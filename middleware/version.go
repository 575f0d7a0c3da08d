package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// SupportedVersion — единственная распознаваемая версия API.
const SupportedVersion = "v1"

// Version отклоняет запросы с нераспознанной версией API до того, как
// обработчик успеет обратиться к базе данных. Никаких побочных эффектов
// у отклоненного запроса нет.
func Version(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version := mux.Vars(r)["version"]
		if version != SupportedVersion {
			log.Printf("❌ Unsupported api version %q for %s %s", version, r.Method, r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string][]string{
				"errors": {"not supported api version: " + version},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
