package employee

import "time"

type Employee struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	FirstName  string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName   string    `gorm:"column:last_name;type:varchar(100);not null"`
	Email      string    `gorm:"column:email;type:varchar(255);not null"`
	Position   string    `gorm:"column:position;type:varchar(100)"`
	Department string    `gorm:"column:department;type:varchar(100)"`
	DateJoined time.Time `gorm:"column:date_joined;type:date;not null"`
	Salary     float64   `gorm:"column:salary;type:numeric(12,2);not null;default:0"`
	Role       string    `gorm:"column:role;type:varchar(20);not null;default:'employee'"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
