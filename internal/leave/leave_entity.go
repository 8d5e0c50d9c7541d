package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	TypeAnnual = "Annual"
	TypeSick   = "Sick"
	TypeCasual = "Casual"
)

type Leave struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	EmployeeID uint      `gorm:"column:employee_id;not null"`
	StartDate  time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate    time.Time `gorm:"column:end_date;type:date;not null"`
	LeaveType  string    `gorm:"column:leave_type;not null"`
	Reason     string    `gorm:"column:reason"`
	Status     string    `gorm:"column:status;default:'Pending'"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Leave) TableName() string {
	return "leaves"
}
