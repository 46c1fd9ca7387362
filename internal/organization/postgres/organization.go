package postgres

import (
	"errors"

	organizationDatamodel "github.com/frahmantamala/recognition/internal/core/datamodel/organization"
	"github.com/frahmantamala/recognition/internal/organization"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) organization.Repository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) EnsureBranch(name string) (int64, error) {
	var branch organizationDatamodel.Branch
	err := r.db.Where(organizationDatamodel.Branch{Name: name}).
		FirstOrCreate(&branch).Error
	return branch.ID, err
}

func (r *OrganizationRepository) EnsureArea(branchID int64, name string) (int64, error) {
	var area organizationDatamodel.Area
	err := r.db.Where(organizationDatamodel.Area{BranchID: branchID, Name: name}).
		FirstOrCreate(&area).Error
	return area.ID, err
}

func (r *OrganizationRepository) EnsureDepartment(areaID int64, name string) (int64, error) {
	var department organizationDatamodel.Department
	err := r.db.Where(organizationDatamodel.Department{AreaID: areaID, Name: name}).
		FirstOrCreate(&department).Error
	return department.ID, err
}

func (r *OrganizationRepository) EnsureTeam(departmentID int64, name string) (int64, error) {
	var team organizationDatamodel.Team
	err := r.db.Where(organizationDatamodel.Team{DepartmentID: departmentID, Name: name}).
		FirstOrCreate(&team).Error
	return team.ID, err
}

func (r *OrganizationRepository) TeamIDByName(name string) (int64, error) {
	var team organizationDatamodel.Team
	err := r.db.Where("name = ?", name).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, organization.ErrTeamNotFound
		}
		return 0, err
	}
	return team.ID, nil
}
