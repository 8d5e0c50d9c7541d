package attendance

type CreateAttendanceRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=Present Absent Late"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

type UpdateAttendanceRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=Present Absent Late"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

type AttendanceResponse struct {
	ID         uint    `json:"id"`
	EmployeeID uint    `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
}
