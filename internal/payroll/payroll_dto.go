package payroll

// net_salary is deliberately absent from the request types: it is always
// derived server-side, whatever the client submits.

type CreatePayrollRequest struct {
	EmployeeID  uint    `json:"employee_id" binding:"required"`
	BasicSalary float64 `json:"basic_salary" binding:"required"`
	Tax         float64 `json:"tax"`
	Deductions  float64 `json:"deductions"`
	PaymentDate string  `json:"payment_date"`
}

type UpdatePayrollRequest struct {
	EmployeeID  uint    `json:"employee_id" binding:"required"`
	BasicSalary float64 `json:"basic_salary" binding:"required"`
	Tax         float64 `json:"tax"`
	Deductions  float64 `json:"deductions"`
	PaymentDate string  `json:"payment_date"`
}

type PayrollResponse struct {
	ID          uint    `json:"id"`
	EmployeeID  uint    `json:"employee_id"`
	BasicSalary float64 `json:"basic_salary"`
	Tax         float64 `json:"tax"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"net_salary"`
	PaymentDate *string `json:"payment_date"`
}
