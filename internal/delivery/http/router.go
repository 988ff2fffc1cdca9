package http

import (
	"bytes"
	"io/fs"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "mergingtonactivities/docs"
	"mergingtonactivities/internal/delivery/http/controllers"
)

// IndexPath is where GET / redirects to.
const IndexPath = "/static/index.html"

// NewRouter initializes the HTTP router with all application routes.
// static holds the browser UI served under /static/.
func NewRouter(activityController *controllers.ActivityController, static fs.FS) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", activityController.Signup)
	mux.HandleFunc("POST /activities/{name}/unregister", activityController.Unregister)

	// UI
	mux.Handle("GET /{$}", http.RedirectHandler(IndexPath, http.StatusTemporaryRedirect))
	mux.HandleFunc("GET "+IndexPath, serveIndex(static))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// serveIndex serves index.html directly; the file server would redirect
// /static/index.html to /static/.
func serveIndex(static fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := fs.ReadFile(static, "index.html")
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(b))
	}
}
