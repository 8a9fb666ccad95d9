package devices

import "github.com/naveen-dev/devices-api/internal/models"

// The only transition rule: while a device is IN_USE its name and brand are
// frozen and the record cannot be deleted. State itself may move freely
// between any two values.

func validateUpdate(device *models.Device, req Request) error {
	if device.State != models.StateInUse {
		return nil
	}

	nameChanged := req.Name != nil && *req.Name != device.Name
	brandChanged := req.Brand != nil && *req.Brand != device.Brand

	if nameChanged || brandChanged {
		return InvalidTransitionError{Reason: "Cannot update name/brand of a device in use"}
	}
	return nil
}

func validateDelete(device *models.Device) error {
	if device.State == models.StateInUse {
		return InvalidTransitionError{Reason: "Cannot delete a device in use"}
	}
	return nil
}
