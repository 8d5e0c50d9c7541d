package attendance

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
)

// CheckIn/CheckOut are nullable by contract: an absent or empty value is
// stored as NULL, never as an empty string.
type Attendance struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	EmployeeID uint      `gorm:"column:employee_id;not null;index"`
	Date       time.Time `gorm:"column:date;type:date;not null"`
	Status     string    `gorm:"column:status;type:varchar(10);not null"`
	CheckIn    *string   `gorm:"column:check_in;type:time"`
	CheckOut   *string   `gorm:"column:check_out;type:time"`
}

func (Attendance) TableName() string {
	return "attendance"
}
