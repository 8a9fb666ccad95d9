package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/naveen-dev/devices-api/internal/buildinfo"
	"github.com/naveen-dev/devices-api/internal/devices"
)

// Router wraps the mux router and the device service
type Router struct {
	*mux.Router
	devices *devices.Service
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(svc *devices.Service) *Router {
	r := &Router{
		Router:  mux.NewRouter(),
		devices: svc,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Device routes
	api := r.PathPrefix("/api/devices").Subrouter()
	api.HandleFunc("", r.createDevice).Methods("POST")
	api.HandleFunc("", r.listDevices).Methods("GET")
	api.HandleFunc("/brand/{brand}", r.listDevicesByBrand).Methods("GET")
	api.HandleFunc("/state/{state}", r.listDevicesByState).Methods("GET")
	api.HandleFunc("/{id}", r.getDevice).Methods("GET")
	api.HandleFunc("/{id}", r.updateDevice).Methods("PUT")
	api.HandleFunc("/{id}", r.patchDevice).Methods("PATCH")
	api.HandleFunc("/{id}", r.deleteDevice).Methods("DELETE")

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version(),
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
