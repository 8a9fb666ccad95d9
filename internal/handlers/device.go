package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/naveen-dev/devices-api/internal/devices"
	"github.com/naveen-dev/devices-api/internal/models"
	"github.com/rs/zerolog"
)

// createDevice creates a new device
func (r *Router) createDevice(w http.ResponseWriter, req *http.Request) {
	var body devices.Request
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	device, err := r.devices.Create(req.Context(), body)
	if err != nil {
		r.writeDeviceError(w, req, err)
		return
	}
	respondJSON(w, http.StatusCreated, devices.ToResponse(device))
}

// getDevice returns a single device by ID
func (r *Router) getDevice(w http.ResponseWriter, req *http.Request) {
	id, ok := deviceID(w, req)
	if !ok {
		return
	}

	device, err := r.devices.Get(req.Context(), id)
	if err != nil {
		r.writeDeviceError(w, req, err)
		return
	}
	respondJSON(w, http.StatusOK, devices.ToResponse(device))
}

// listDevices returns all devices
func (r *Router) listDevices(w http.ResponseWriter, req *http.Request) {
	all, err := r.devices.List(req.Context())
	if err != nil {
		r.writeDeviceError(w, req, err)
		return
	}
	respondJSON(w, http.StatusOK, devices.ToResponses(all))
}

// listDevicesByBrand returns devices matching the brand exactly
func (r *Router) listDevicesByBrand(w http.ResponseWriter, req *http.Request) {
	brand := mux.Vars(req)["brand"]

	matched, err := r.devices.ListByBrand(req.Context(), brand)
	if err != nil {
		r.writeDeviceError(w, req, err)
		return
	}
	respondJSON(w, http.StatusOK, devices.ToResponses(matched))
}

// listDevicesByState returns devices in the given state. The state literal is
// checked before touching the store.
func (r *Router) listDevicesByState(w http.ResponseWriter, req *http.Request) {
	state, err := models.ParseDeviceState(mux.Vars(req)["state"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matched, err := r.devices.ListByState(req.Context(), state)
	if err != nil {
		r.writeDeviceError(w, req, err)
		return
	}
	respondJSON(w, http.StatusOK, devices.ToResponses(matched))
}

// updateDevice replaces the supplied fields of an existing device
func (r *Router) updateDevice(w http.ResponseWriter, req *http.Request) {
	id, ok := deviceID(w, req)
	if !ok {
		return
	}

	var body devices.Request
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	device, err := r.devices.Update(req.Context(), id, body)
	if err != nil {
		r.writeDeviceError(w, req, err)
		return
	}
	respondJSON(w, http.StatusOK, devices.ToResponse(device))
}

// patchDevice applies a partial update
func (r *Router) patchDevice(w http.ResponseWriter, req *http.Request) {
	id, ok := deviceID(w, req)
	if !ok {
		return
	}

	var body devices.Request
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	response, err := r.devices.PartialUpdate(req.Context(), id, body)
	if err != nil {
		r.writeDeviceError(w, req, err)
		return
	}
	respondJSON(w, http.StatusOK, response)
}

// deleteDevice removes a device
func (r *Router) deleteDevice(w http.ResponseWriter, req *http.Request) {
	id, ok := deviceID(w, req)
	if !ok {
		return
	}

	if err := r.devices.Delete(req.Context(), id); err != nil {
		r.writeDeviceError(w, req, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deviceID parses the {id} path variable, answering 400 itself on garbage
func deviceID(w http.ResponseWriter, req *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(req)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid device ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeDeviceError is the single place that maps business error kinds to
// HTTP status codes. Bodies carry the error message as plain text.
func (r *Router) writeDeviceError(w http.ResponseWriter, req *http.Request, err error) {
	var (
		notFound          devices.NotFoundError
		invalidTransition devices.InvalidTransitionError
		validation        devices.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &invalidTransition), errors.As(err, &validation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		zerolog.Ctx(req.Context()).Error().Err(err).Msg("unhandled device error")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
