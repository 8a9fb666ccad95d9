package devices

import (
	"context"
	"sync"

	"github.com/naveen-dev/devices-api/internal/models"
)

type memoryStore struct {
	mu     sync.RWMutex
	nextID uint64
	order  []uint64
	rows   map[uint64]models.Device
}

// NewMemoryStore returns an in-memory Store. Listing preserves insertion
// order. Used by tests and local experiments; production uses NewGormStore.
func NewMemoryStore() Store {
	return &memoryStore{
		rows: make(map[uint64]models.Device),
	}
}

func (s *memoryStore) Create(_ context.Context, device *models.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	device.ID = s.nextID
	s.rows[device.ID] = *device
	s.order = append(s.order, device.ID)
	return nil
}

func (s *memoryStore) FindByID(_ context.Context, id uint64) (*models.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	return &row, nil
}

func (s *memoryStore) FindAll(_ context.Context) ([]models.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	devices := make([]models.Device, 0, len(s.order))
	for _, id := range s.order {
		devices = append(devices, s.rows[id])
	}
	return devices, nil
}

func (s *memoryStore) FindByBrand(_ context.Context, brand string) ([]models.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var devices []models.Device
	for _, id := range s.order {
		if row := s.rows[id]; row.Brand == brand {
			devices = append(devices, row)
		}
	}
	return devices, nil
}

func (s *memoryStore) FindByState(_ context.Context, state models.DeviceState) ([]models.Device, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var devices []models.Device
	for _, id := range s.order {
		if row := s.rows[id]; row.State == state {
			devices = append(devices, row)
		}
	}
	return devices, nil
}

func (s *memoryStore) Save(_ context.Context, device *models.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[device.ID]; !ok {
		return NotFoundError{ID: device.ID}
	}
	s.rows[device.ID] = *device
	return nil
}

func (s *memoryStore) Delete(_ context.Context, device *models.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[device.ID]; !ok {
		return NotFoundError{ID: device.ID}
	}
	delete(s.rows, device.ID)
	for i, id := range s.order {
		if id == device.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
