package entity

import (
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleClient       Role = "client"
	RoleVeterinarian Role = "veterinarian"
	RoleSuperadmin   Role = "superadmin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleVeterinarian, RoleSuperadmin:
		return true
	}
	return false
}

// AccountStatus models the soft-delete lifecycle. Disabled records are retained
// and stay readable by superadmins.
type AccountStatus string

const (
	StatusEnabled  AccountStatus = "enabled"
	StatusDisabled AccountStatus = "disabled"
)

// Owner is any system account: clients, veterinarians and superadmins alike.
type Owner struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Email     string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string        `gorm:"type:text;not null" json:"-"`
	Address   string        `gorm:"type:varchar(255)" json:"address"`
	Phone     string        `gorm:"type:varchar(50)" json:"phone"`
	PhotoPath string        `gorm:"type:varchar(255)" json:"photo_path,omitempty"`
	Location  string        `gorm:"type:text" json:"location,omitempty"`
	Role      Role          `gorm:"type:varchar(20);not null;default:'client';index" json:"role"`
	Status    AccountStatus `gorm:"type:varchar(20);not null;default:'enabled';index" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pets []Pet `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}

func (Owner) TableName() string {
	return "owners"
}

// IsDisabled checks whether the account has been soft-deactivated.
func (o *Owner) IsDisabled() bool {
	return o.Status == StatusDisabled
}

// Disable flips the account into the disabled state.
func (o *Owner) Disable() {
	o.Status = StatusDisabled
}
