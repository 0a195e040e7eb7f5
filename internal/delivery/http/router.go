package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"ekhayalegae/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(meta *controllers.MetaController, content *controllers.ContentController, submissions *controllers.SubmissionController) *http.ServeMux {
	mux := http.NewServeMux()

	// Meta
	mux.HandleFunc("GET /{$}", meta.Root)
	mux.HandleFunc("GET /test", meta.Diagnostics)
	mux.HandleFunc("GET /api/schema", meta.Schema)

	// Public content
	mux.HandleFunc("GET /api/events", content.ListEvents)
	mux.HandleFunc("GET /api/resources", content.ListResources)
	mux.HandleFunc("GET /api/partners", content.ListPartners)
	mux.HandleFunc("GET /api/stories", content.ListStories)
	mux.HandleFunc("GET /api/stats", content.ListStats)

	// Form submissions
	mux.HandleFunc("POST /api/bookings", submissions.CreateBooking)
	mux.HandleFunc("POST /api/applications", submissions.CreateApplication)
	mux.HandleFunc("POST /api/contact", submissions.CreateContact)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
