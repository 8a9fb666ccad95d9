package devices

import (
	"time"

	"github.com/naveen-dev/devices-api/internal/models"
)

// Request carries the mutable device fields. Pointer fields distinguish
// "absent" from zero values so the same shape serves both full replacement
// and partial patch.
type Request struct {
	Name  *string             `json:"name"`
	Brand *string             `json:"brand"`
	State *models.DeviceState `json:"state"`
}

// Response is the read-only projection returned to clients.
type Response struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	State        string    `json:"state"`
	CreationTime time.Time `json:"creationTime"`
	UpdateTime   time.Time `json:"updateTime"`
}

// toDevice builds a fresh record from the request. Absent fields persist as
// zero values; timestamps are left for the service to stamp.
func toDevice(req Request) *models.Device {
	device := &models.Device{}
	applyRequest(req, device)
	return device
}

// applyRequest copies supplied fields onto the device, leaving absent ones
// untouched.
func applyRequest(req Request, device *models.Device) {
	if req.Name != nil {
		device.Name = *req.Name
	}
	if req.Brand != nil {
		device.Brand = *req.Brand
	}
	if req.State != nil {
		device.State = *req.State
	}
}

// ToResponse projects a stored device into the wire shape.
func ToResponse(device *models.Device) Response {
	return Response{
		ID:           device.ID,
		Name:         device.Name,
		Brand:        device.Brand,
		State:        string(device.State),
		CreationTime: device.CreationTime,
		UpdateTime:   device.UpdateTime,
	}
}

// ToResponses projects a list of devices.
func ToResponses(devices []models.Device) []Response {
	responses := make([]Response, 0, len(devices))
	for i := range devices {
		responses = append(responses, ToResponse(&devices[i]))
	}
	return responses
}
