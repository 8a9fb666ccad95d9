package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naveen-dev/devices-api/internal/devices"
)

func newTestRouter() *Router {
	return NewRouter(devices.NewService(devices.NewMemoryStore()))
}

func doJSON(t *testing.T, router *Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createDevice(t *testing.T, router *Router, body string) devices.Response {
	t.Helper()
	rec := doJSON(t, router, "POST", "/api/devices", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Create failed with status %d: %s", rec.Code, rec.Body.String())
	}
	var resp devices.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode create response: %v", err)
	}
	return resp
}

func TestCreateDeviceEndpoint(t *testing.T) {
	router := newTestRouter()

	resp := createDevice(t, router, `{"name":"iPhone 15","brand":"Apple","state":"AVAILABLE"}`)

	if resp.ID == 0 {
		t.Error("Expected generated id")
	}
	if resp.State != "AVAILABLE" {
		t.Errorf("State mismatch: %s", resp.State)
	}
	if !resp.CreationTime.Equal(resp.UpdateTime) {
		t.Error("creationTime and updateTime should match on create")
	}
}

func TestCreateDeviceEndpoint_BadPayload(t *testing.T) {
	router := newTestRouter()

	if rec := doJSON(t, router, "POST", "/api/devices", `{not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("Malformed JSON should give 400, got %d", rec.Code)
	}

	// Unknown state literal is rejected at the boundary
	if rec := doJSON(t, router, "POST", "/api/devices", `{"state":"BROKEN"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("Unknown state should give 400, got %d", rec.Code)
	}
}

func TestGetDeviceEndpoint(t *testing.T) {
	router := newTestRouter()
	created := createDevice(t, router, `{"name":"Scanner","brand":"Zebra","state":"AVAILABLE"}`)

	rec := doJSON(t, router, "GET", "/api/devices/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var resp devices.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.ID != created.ID || resp.Name != "Scanner" {
		t.Errorf("Unexpected response: %+v", resp)
	}

	rec = doJSON(t, router, "GET", "/api/devices/7", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "Device not found with id: 7" {
		t.Errorf("Unexpected body: %q", body)
	}

	if rec := doJSON(t, router, "GET", "/api/devices/abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("Non-numeric id should give 400, got %d", rec.Code)
	}
}

func TestUpdateDeviceEndpoint(t *testing.T) {
	router := newTestRouter()
	createDevice(t, router, `{"name":"Scanner","brand":"Zebra","state":"AVAILABLE"}`)

	rec := doJSON(t, router, "PUT", "/api/devices/1", `{"name":"Scanner2","brand":"Zebra","state":"IN_USE"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp devices.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Name != "Scanner2" || resp.State != "IN_USE" {
		t.Errorf("Unexpected response: %+v", resp)
	}

	// Now in use: rename rejected with 400
	rec = doJSON(t, router, "PUT", "/api/devices/1", `{"name":"NewName","brand":"Zebra","state":"IN_USE"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for rename while in use, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "Cannot update name/brand of a device in use" {
		t.Errorf("Unexpected body: %q", body)
	}

	// Missing id gives the dedicated not-found status on PUT
	rec = doJSON(t, router, "PUT", "/api/devices/9", `{"name":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestPatchDeviceEndpoint(t *testing.T) {
	router := newTestRouter()
	createDevice(t, router, `{"name":"Scanner","brand":"Zebra","state":"AVAILABLE"}`)

	rec := doJSON(t, router, "PATCH", "/api/devices/1", `{"brand":"Honeywell"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp devices.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Name != "Scanner" || resp.Brand != "Honeywell" {
		t.Errorf("Patch should merge fields: %+v", resp)
	}

	// Missing id on PATCH answers 400, not 404
	rec = doJSON(t, router, "PATCH", "/api/devices/9", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "Device not found" {
		t.Errorf("Unexpected body: %q", body)
	}
}

func TestDeleteDeviceEndpoint(t *testing.T) {
	router := newTestRouter()
	createDevice(t, router, `{"name":"Scanner","brand":"Zebra","state":"IN_USE"}`)

	rec := doJSON(t, router, "DELETE", "/api/devices/1", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for delete while in use, got %d", rec.Code)
	}

	// Release it, then delete for real
	doJSON(t, router, "PATCH", "/api/devices/1", `{"state":"INACTIVE"}`)

	rec = doJSON(t, router, "DELETE", "/api/devices/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}

	if rec := doJSON(t, router, "GET", "/api/devices/1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("Deleted device should give 404, got %d", rec.Code)
	}

	if rec := doJSON(t, router, "DELETE", "/api/devices/1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("Double delete should give 404, got %d", rec.Code)
	}
}

func TestListEndpoints(t *testing.T) {
	router := newTestRouter()
	createDevice(t, router, `{"name":"D1","brand":"BrandA","state":"AVAILABLE"}`)
	createDevice(t, router, `{"name":"D2","brand":"BrandB","state":"IN_USE"}`)
	createDevice(t, router, `{"name":"D3","brand":"BrandA","state":"INACTIVE"}`)

	var all []devices.Response
	rec := doJSON(t, router, "GET", "/api/devices", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 devices, got %d", len(all))
	}

	var byBrand []devices.Response
	rec = doJSON(t, router, "GET", "/api/devices/brand/BrandA", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &byBrand); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(byBrand) != 2 {
		t.Errorf("Expected 2 BrandA devices, got %d", len(byBrand))
	}

	var byState []devices.Response
	rec = doJSON(t, router, "GET", "/api/devices/state/IN_USE", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &byState); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(byState) != 1 || byState[0].Name != "D2" {
		t.Errorf("Unexpected state filter result: %+v", byState)
	}

	if rec := doJSON(t, router, "GET", "/api/devices/state/BROKEN", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("Unknown state literal should give 400, got %d", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Unexpected health body: %v", body)
	}
}
