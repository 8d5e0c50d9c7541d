package leave

type CreateLeaveRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=Annual Sick Casual"`
	Reason     string `json:"reason" binding:"omitempty,max=500"`
}

// Updates only move a request out of Pending. Everything else on the
// row is immutable once filed.
type UpdateLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}

type LeaveResponse struct {
	ID         uint   `json:"id"`
	EmployeeID uint   `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}
