package handlers

import "net/url"

// BuildFilter переводит query-параметры в предикат точного совпадения (AND).
// Поле включается только с непустым значением: отсутствующие и пустые
// значения отбрасываются, а не трактуются как "совпасть с пустой строкой".
// Пустой предикат означает полную выборку.
func BuildFilter(query url.Values, allowed []string) map[string]any {
	filter := make(map[string]any)
	for _, field := range allowed {
		if value := query.Get(field); value != "" {
			filter[field] = value
		}
	}
	return filter
}
