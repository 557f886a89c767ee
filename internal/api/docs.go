// Package api serves the OpenAPI descriptors and Swagger UI for both services.
package api

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

//go:embed account_openapi.yaml
var AccountServiceSpec []byte

//go:embed customer_openapi.yaml
var CustomerServiceSpec []byte

// RegisterDocsRoutes registers documentation routes on the given router.
//
// GET /docs         → Swagger UI
//
// GET /docs/openapi → OpenAPI spec (JSON)
func RegisterDocsRoutes(r chi.Router, spec []byte) {
	var (
		once sync.Once
		doc  *openapi3.T
		err  error
	)
	load := func() (*openapi3.T, error) {
		once.Do(func() {
			loader := openapi3.NewLoader()
			doc, err = loader.LoadFromData(spec)
			if err == nil {
				err = doc.Validate(loader.Context)
			}
		})
		return doc, err
	}

	r.Get("/docs", handleSwaggerUI)
	r.Get("/docs/openapi", func(w http.ResponseWriter, _ *http.Request) {
		parsed, err := load()
		if err != nil {
			http.Error(w, "Failed to load OpenAPI spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(parsed); err != nil {
			http.Error(w, "Failed to encode OpenAPI spec", http.StatusInternalServerError)
		}
	})
}

func handleSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIHTML)) //nolint:errcheck // Nothing useful to do if write fails
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Bank Ledger - Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-standalone-preset.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: '/docs/openapi',
        dom_id: '#swagger-ui',
        presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
        layout: 'StandaloneLayout',
      });
    };
  </script>
</body>
</html>`
