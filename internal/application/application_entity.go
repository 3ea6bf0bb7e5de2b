package application

import (
	"time"

	"go-leave/internal/employee"
)

// Application is immutable once created; there is no update or delete path.
type Application struct {
	ID             int               `json:"id" gorm:"primaryKey;autoIncrement"`
	LeaveStartDate time.Time         `json:"leave_start_date" gorm:"column:leave_start_date;type:date;not null"`
	LeaveEndDate   time.Time         `json:"leave_end_date" gorm:"column:leave_end_date;type:date;not null"`
	EmployeeID     int               `json:"employeeId" gorm:"not null;index:idx_applications_employee"`
	Employee       employee.Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
}
