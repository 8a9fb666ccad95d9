package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DeviceState defines the lifecycle state of a device
type DeviceState string

const (
	StateAvailable DeviceState = "AVAILABLE" // Free to be assigned
	StateInUse     DeviceState = "IN_USE"    // Assigned; name/brand frozen, cannot delete
	StateInactive  DeviceState = "INACTIVE"  // Retired but kept on record
)

// ParseDeviceState maps a wire literal onto a DeviceState. Unknown literals
// are rejected rather than defaulted.
func ParseDeviceState(s string) (DeviceState, error) {
	switch state := DeviceState(s); state {
	case StateAvailable, StateInUse, StateInactive:
		return state, nil
	default:
		return "", fmt.Errorf("unknown device state: %q", s)
	}
}

// UnmarshalJSON enforces the fixed literal set at the JSON boundary
func (s *DeviceState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	state, err := ParseDeviceState(raw)
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// Device represents a managed device row.
// CreationTime/UpdateTime are stamped by the service layer, deliberately not
// named CreatedAt/UpdatedAt so GORM leaves them alone.
type Device struct {
	ID           uint64      `gorm:"primaryKey" json:"id"`
	Name         string      `json:"name"`
	Brand        string      `json:"brand"`
	State        DeviceState `json:"state"`
	CreationTime time.Time   `gorm:"not null" json:"creationTime"`
	UpdateTime   time.Time   `gorm:"not null" json:"updateTime"`
}

// TableName specifies the table name for Device
func (Device) TableName() string {
	return "devices"
}
