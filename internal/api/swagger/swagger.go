package swagger

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

//go:embed embed/notes.swagger.json
var notesSpec []byte

// Document возвращает OpenAPI документ, в котором пути заметок начинаются с prefix.
// Пути во встроенном документе относительны: "/" означает сам префикс без завершающего слэша,
// так же как маршруты регистрируются на mux.
func Document(prefix string) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(notesSpec, &doc); err != nil {
		return nil, fmt.Errorf("decode embedded spec: %w", err)
	}

	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("embedded spec has no paths")
	}

	prefixed := make(map[string]any, len(paths))
	for path, item := range paths {
		if path == "/" {
			prefixed[prefix] = item
			continue
		}
		prefixed[prefix+path] = item
	}

	doc["basePath"] = "/"
	doc["paths"] = prefixed

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode spec: %w", err)
	}
	return out, nil
}

// ServeSwagger регистрирует GET /swagger.json на mux.
// Документ собирается один раз при регистрации.
func ServeSwagger(mux *http.ServeMux, prefix string) error {
	doc, err := Document(prefix)
	if err != nil {
		return err
	}

	mux.HandleFunc("GET /swagger.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(doc); err != nil {
			log.Printf("[HTTP] Failed to write swagger.json: %v", err)
		}
	})

	log.Printf("[HTTP] OpenAPI document available at /swagger.json")
	return nil
}
