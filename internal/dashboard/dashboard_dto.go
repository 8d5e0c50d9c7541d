package dashboard

// SummaryResponse uses camelCase keys; the dashboard screen of the client
// binds to these names directly.
type SummaryResponse struct {
	TotalEmployees int64   `json:"totalEmployees"`
	TotalPayroll   float64 `json:"totalPayroll"`
	AttendanceRate float64 `json:"attendanceRate"`
}
