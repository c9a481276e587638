package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Report generation
	r.HandleFunc("/api/report", deps.ReportHandler.GenerateReport).Methods("POST")
}
