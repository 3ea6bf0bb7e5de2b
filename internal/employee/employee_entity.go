package employee

import "time"

// Employee is created by the seed/admin process and never deleted. The
// secret field is stored but must never appear in an API response; every
// read path goes through the projection DTO.
type Employee struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName   string    `json:"firstName" gorm:"type:varchar(120);not null"`
	LastName    string    `json:"lastName" gorm:"type:varchar(120);not null"`
	DateOfBirth time.Time `json:"date_of_birth" gorm:"column:date_of_birth;not null"`
	Secret      string    `json:"secret" gorm:"type:varchar(255)"`
}
