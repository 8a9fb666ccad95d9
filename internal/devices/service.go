package devices

import (
	"context"
	"errors"
	"time"

	"github.com/naveen-dev/devices-api/internal/models"
)

// Service owns the device business rules. All persistence goes through the
// injected Store; timestamps are stamped here so the store stays dumb.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a device service on top of the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Create persists a new device built from the request. Absent fields are
// stored as zero values; no uniqueness check on (name, brand).
func (s *Service) Create(ctx context.Context, req Request) (*models.Device, error) {
	device := toDevice(req)

	now := s.now()
	device.CreationTime = now
	device.UpdateTime = now

	if err := s.store.Create(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

// Update replaces the supplied fields on an existing device. Fields absent
// from the request keep their stored value, so the same call shape covers
// full replacement when all fields are present.
func (s *Service) Update(ctx context.Context, id uint64, req Request) (*models.Device, error) {
	device, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateUpdate(device, req); err != nil {
		return nil, err
	}

	applyRequest(req, device)
	device.UpdateTime = s.now()

	if err := s.store.Save(ctx, device); err != nil {
		return nil, err
	}
	return device, nil
}

// PartialUpdate mirrors Update but reports a missing id as a plain
// validation failure rather than NotFoundError, and returns the response
// projection directly. Callers relying on a 400 for a bad id on PATCH
// depend on this.
func (s *Service) PartialUpdate(ctx context.Context, id uint64, req Request) (Response, error) {
	device, err := s.store.FindByID(ctx, id)
	if err != nil {
		var notFound NotFoundError
		if errors.As(err, &notFound) {
			return Response{}, ValidationError{Reason: "Device not found"}
		}
		return Response{}, err
	}

	if err := validateUpdate(device, req); err != nil {
		return Response{}, err
	}

	applyRequest(req, device)
	device.UpdateTime = s.now()

	if err := s.store.Save(ctx, device); err != nil {
		return Response{}, err
	}
	return ToResponse(device), nil
}

// Get returns the stored device or NotFoundError.
func (s *Service) Get(ctx context.Context, id uint64) (*models.Device, error) {
	return s.store.FindByID(ctx, id)
}

// List returns all devices in store order.
func (s *Service) List(ctx context.Context) ([]models.Device, error) {
	return s.store.FindAll(ctx)
}

// ListByBrand returns devices whose brand exactly equals brand (case-sensitive).
func (s *Service) ListByBrand(ctx context.Context, brand string) ([]models.Device, error) {
	return s.store.FindByBrand(ctx, brand)
}

// ListByState returns devices currently in the given state.
func (s *Service) ListByState(ctx context.Context, state models.DeviceState) ([]models.Device, error) {
	return s.store.FindByState(ctx, state)
}

// Delete removes the device unless it is in use.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	device, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := validateDelete(device); err != nil {
		return err
	}

	return s.store.Delete(ctx, device)
}
