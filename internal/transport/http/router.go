package http

import (
	"net/http"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-openapi/runtime/middleware"
	gohandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/tenisx/catalog-api/internal/domain"
	"github.com/tenisx/catalog-api/internal/metrics"
)

func NewRouter(
	ph *ProductHandler,
	ih *ImagesHandler,
	validator *domain.Validation,
	logger hclog.Logger,
	corsOrigins string,
) http.Handler {
	router := mux.NewRouter()

	// Create a middleware instance
	mw := NewMiddleware(logger, validator)

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(metrics.Middleware)

	// Read-only product routes
	router.HandleFunc("/products", ph.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id:[0-9]+}", ph.GetProductByID).Methods("GET")

	// Routes requiring validation middleware (for request body validation)
	postRouter := router.Methods("POST").PathPrefix("/products").Subrouter()
	postRouter.HandleFunc("", ph.AddProduct)
	postRouter.Use(mw.ValidationMiddleware)

	putRouter := router.Methods("PUT").Subrouter()
	putRouter.HandleFunc("/products/{id:[0-9]+}", ph.UpdateProduct)
	putRouter.Use(mw.ValidationMiddleware)

	// Delete route (no request body, so validation middleware not needed)
	router.HandleFunc("/products/{id:[0-9]+}", ph.DeleteProduct).Methods("DELETE")

	// Image upload and retrieval
	router.HandleFunc("/upload-image", ih.UploadImage).Methods("POST")
	router.Handle("/static/uploads/{filename}",
		GzipMiddleware(http.HandlerFunc(ih.ServeImage))).Methods("GET")

	// Operational endpoints
	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Swagger UI and specification routes
	// Determine the absolute path to the swagger.yaml file
	_, filename, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filename)                        // .../internal/transport/http
	rootDir := filepath.Join(basePath, "..", "..", "..")      // Navigate up to the root
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml")

	// Serve the swagger.yaml file
	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	// Configure the Redoc middleware to point to the correct SpecURL
	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	swaggerHandler := middleware.Redoc(swaggerOpts, nil)
	router.Handle("/docs", swaggerHandler).Methods("GET")

	// Wrap the router in the CORS handler
	origins := strings.Split(corsOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	ch := gohandlers.CORS(
		gohandlers.AllowedOrigins(origins),
		gohandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gohandlers.AllowedHeaders([]string{"Content-Type", "Accept", "Origin"}),
	)

	return ch(router)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
