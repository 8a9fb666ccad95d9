package devices

import (
	"context"

	"github.com/naveen-dev/devices-api/internal/models"
)

// Store is the persistence contract for device rows. Implementations must be
// safe for concurrent use; the service performs no locking of its own.
type Store interface {
	// Create inserts a device and fills in the generated id
	Create(ctx context.Context, device *models.Device) error
	// FindByID returns NotFoundError when no row exists for id
	FindByID(ctx context.Context, id uint64) (*models.Device, error)
	FindAll(ctx context.Context) ([]models.Device, error)
	FindByBrand(ctx context.Context, brand string) ([]models.Device, error)
	FindByState(ctx context.Context, state models.DeviceState) ([]models.Device, error)
	// Save overwrites the row matching device.ID
	Save(ctx context.Context, device *models.Device) error
	Delete(ctx context.Context, device *models.Device) error
}
