package postgres

import (
	valueDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/value"
	"github.com/frahmantamala/recognition/internal/value"
	"gorm.io/gorm"
)

type ValueRepository struct {
	db *gorm.DB
}

func NewValueRepository(db *gorm.DB) value.RepositoryAPI {
	return &ValueRepository{db: db}
}

func (r *ValueRepository) GetAll() ([]*valueDatamodel.OrganizationValue, error) {
	var values []*valueDatamodel.OrganizationValue
	err := r.db.Order("name ASC").Find(&values).Error
	return values, err
}

func (r *ValueRepository) GetByID(id int64) (*valueDatamodel.OrganizationValue, error) {
	var v valueDatamodel.OrganizationValue
	err := r.db.Where("id = ?", id).First(&v).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *ValueRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&valueDatamodel.OrganizationValue{}).Count(&count).Error
	return count, err
}

func (r *ValueRepository) Create(v *valueDatamodel.OrganizationValue) error {
	return r.db.Create(v).Error
}
