package report

// ReportType enumerates every report the API can produce. Dispatch is a
// closed switch; anything else is rejected before touching the database.
type ReportType string

const (
	TypeEmployee   ReportType = "employee"
	TypePayroll    ReportType = "payroll"
	TypeAttendance ReportType = "attendance"
	TypeLeave      ReportType = "leave"
)

type EmployeeReportRow struct {
	ID         uint     `gorm:"column:id" json:"id"`
	FirstName  string   `gorm:"column:first_name" json:"first_name"`
	LastName   string   `gorm:"column:last_name" json:"last_name"`
	Email      string   `gorm:"column:email" json:"email"`
	Position   string   `gorm:"column:position" json:"position"`
	Department string   `gorm:"column:department" json:"department"`
	DateJoined string   `gorm:"column:date_joined" json:"date_joined"`
	Salary     *float64 `gorm:"column:salary" json:"salary"`
}

type PayrollReportRow struct {
	ID          uint    `gorm:"column:id" json:"id"`
	EmployeeID  uint    `gorm:"column:employee_id" json:"employee_id"`
	BasicSalary float64 `gorm:"column:basic_salary" json:"basic_salary"`
	Tax         float64 `gorm:"column:tax" json:"tax"`
	Deductions  float64 `gorm:"column:deductions" json:"deductions"`
	NetSalary   float64 `gorm:"column:net_salary" json:"net_salary"`
	PaymentDate *string `gorm:"column:payment_date" json:"payment_date"`
}

type AttendanceReportRow struct {
	ID         uint   `gorm:"column:id" json:"id"`
	EmployeeID uint   `gorm:"column:employee_id" json:"employee_id"`
	Date       string `gorm:"column:date" json:"date"`
	Status     string `gorm:"column:status" json:"status"`
}

type LeaveReportRow struct {
	ID         uint   `gorm:"column:id" json:"id"`
	EmployeeID uint   `gorm:"column:employee_id" json:"employee_id"`
	StartDate  string `gorm:"column:start_date" json:"start_date"`
	EndDate    string `gorm:"column:end_date" json:"end_date"`
	LeaveType  string `gorm:"column:leave_type" json:"leave_type"`
	Status     string `gorm:"column:status" json:"status"`
	Reason     string `gorm:"column:reason" json:"reason"`
}
