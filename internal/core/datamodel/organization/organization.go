package organization

import "time"

// Four-level hierarchy: branch is the root, each lower level references its
// unique parent.

type Branch struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

type Area struct {
	ID        int64     `gorm:"primaryKey"`
	BranchID  int64     `gorm:"column:branch_id;not null"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

type Department struct {
	ID        int64     `gorm:"primaryKey"`
	AreaID    int64     `gorm:"column:area_id;not null"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

type Team struct {
	ID           int64     `gorm:"primaryKey"`
	DepartmentID int64     `gorm:"column:department_id;not null"`
	Name         string    `gorm:"column:name;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
