package employee

type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	DateJoined string  `json:"date_joined" binding:"required"`
	Salary     float64 `json:"salary"`
	Role       string  `json:"role" binding:"omitempty,oneof=employee admin"`
}

type UpdateEmployeeRequest struct {
	FirstName  string  `json:"first_name" binding:"required"`
	LastName   string  `json:"last_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	DateJoined string  `json:"date_joined" binding:"required"`
	Salary     float64 `json:"salary"`
	Role       string  `json:"role" binding:"omitempty,oneof=employee admin"`
}

type EmployeeResponse struct {
	ID         uint    `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	DateJoined string  `json:"date_joined"`
	Salary     float64 `json:"salary"`
	Role       string  `json:"role"`
	UpdatedAt  string  `json:"updated_at"`
}
