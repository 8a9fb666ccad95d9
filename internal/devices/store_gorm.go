package devices

import (
	"context"
	"errors"

	"github.com/naveen-dev/devices-api/internal/database"
	"github.com/naveen-dev/devices-api/internal/models"
	"gorm.io/gorm"
)

type gormStore struct {
	db *database.DB
}

// NewGormStore returns a Store backed by the devices table.
func NewGormStore(db *database.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Create(ctx context.Context, device *models.Device) error {
	return s.db.WithContext(ctx).Create(device).Error
}

func (s *gormStore) FindByID(ctx context.Context, id uint64) (*models.Device, error) {
	var device models.Device
	if err := s.db.WithContext(ctx).First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{ID: id}
		}
		return nil, err
	}
	return &device, nil
}

func (s *gormStore) FindAll(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	if err := s.db.WithContext(ctx).Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (s *gormStore) FindByBrand(ctx context.Context, brand string) ([]models.Device, error) {
	var devices []models.Device
	if err := s.db.WithContext(ctx).Where("brand = ?", brand).Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (s *gormStore) FindByState(ctx context.Context, state models.DeviceState) ([]models.Device, error) {
	var devices []models.Device
	if err := s.db.WithContext(ctx).Where("state = ?", state).Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (s *gormStore) Save(ctx context.Context, device *models.Device) error {
	return s.db.WithContext(ctx).Save(device).Error
}

func (s *gormStore) Delete(ctx context.Context, device *models.Device) error {
	return s.db.WithContext(ctx).Delete(device).Error
}
