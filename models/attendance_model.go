package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttendanceHadir = "hadir"
	AttendanceIzin  = "izin"
	AttendanceSakit = "sakit"
	AttendanceAlpha = "alpha"
)

type Attendance struct {
	gorm.Model
	EmployeeID     uint      `json:"employee_id" gorm:"not null;uniqueIndex:idx_employee_date"`
	Employee       Employee  `json:"employee" gorm:"foreignKey:EmployeeID"`
	AttendanceDate time.Time `json:"attendance_date" gorm:"uniqueIndex:idx_employee_date"`
	Status         string    `json:"status" gorm:"default:'hadir'"`
	Notes          string    `json:"notes"`
	CreatedBy      int       `json:"created_by"`
}
