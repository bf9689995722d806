package domain

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Username  string  `gorm:"column:username;unique;not null" json:"username"`
	FullName  string  `gorm:"column:nama_lengkap;not null" json:"nama_lengkap"`
	Email     string  `gorm:"column:email;unique;not null" json:"email"`
	Password  string  `gorm:"column:password;not null" json:"-"`
	Role      string  `gorm:"column:role;default:customer" json:"role"`
	Age       *int    `gorm:"column:umur" json:"umur,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
