package repository

import (
	"time"

	"go-pharmacy-dashboard/internal/model"

	"gorm.io/gorm"
)

type MedicineRepository interface {
	FindAll() ([]model.Medicine, error)
	FindExpired(asOf time.Time) ([]model.Medicine, error)
	FindByName(name string) (*model.Medicine, error)
	Create(medicine *model.Medicine) error
}

type medicineRepo struct {
	db *gorm.DB
}

func NewMedicineRepo(db *gorm.DB) MedicineRepository {
	return &medicineRepo{db}
}

func (r *medicineRepo) FindAll() ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.Preload("Supplier").Order("name ASC").Find(&medicines).Error
	return medicines, err
}

// FindExpired returns medicines whose expiration date is before the day of asOf
func (r *medicineRepo) FindExpired(asOf time.Time) ([]model.Medicine, error) {
	var medicines []model.Medicine
	err := r.db.Preload("Supplier").
		Where("expiration_date < ?", asOf.Format("2006-01-02")).
		Order("expiration_date ASC").
		Find(&medicines).Error
	return medicines, err
}

func (r *medicineRepo) FindByName(name string) (*model.Medicine, error) {
	var medicine model.Medicine
	if err := r.db.Where("name = ?", name).First(&medicine).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepo) Create(medicine *model.Medicine) error {
	return r.db.Create(medicine).Error
}
