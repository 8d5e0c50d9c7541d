package events

import "time"

const EmployeeLifecycleTopic = "payroll.employee.lifecycle.v1"

const (
	EmployeeCreatedType = "employee_created"
	EmployeeDeletedType = "employee_deleted"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID uint      `json:"employee_id"`
	Email      string    `json:"email"`
	Department string    `json:"department,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EmployeeDeletedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID uint      `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
