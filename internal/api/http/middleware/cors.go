package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// CORS настраивает CORS middleware по списку origins через запятую.
// Пустой список разрешает все origins.
func CORS(allowedOrigins string, maxAge int) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if strings.TrimSpace(allowedOrigins) != "" {
		origins = strings.Split(allowedOrigins, ",")
		// Убираем пробелы из origins
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}

	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Content-Type",
			"X-Requested-With",
			RequestIDHeader,
		},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         maxAge,
	})

	return c.Handler
}
