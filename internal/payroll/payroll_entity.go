package payroll

import "time"

type Payroll struct {
	ID          uint       `gorm:"column:id;primaryKey"`
	EmployeeID  uint       `gorm:"column:employee_id;not null;index"`
	BasicSalary float64    `gorm:"column:basic_salary;type:numeric(12,2);not null;default:0"`
	Tax         float64    `gorm:"column:tax;type:numeric(12,2);not null;default:0"`
	Deductions  float64    `gorm:"column:deductions;type:numeric(12,2);not null;default:0"`
	NetSalary   float64    `gorm:"column:net_salary;type:numeric(12,2);not null;default:0"`
	PaymentDate *time.Time `gorm:"column:payment_date;type:date"`
}

func (Payroll) TableName() string {
	return "payroll"
}
