package model

import "time"

// Admin is a dashboard operator account. Admins log in; workers (the managed
// population) never do.
// swagger:model Admin
type Admin struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
}

func (Admin) TableName() string {
	return "admins"
}
