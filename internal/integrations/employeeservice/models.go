package employeeservice

// Role роль сотрудника в системе
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Employee модель сотрудника из EmployeeService
type Employee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Role        Role   `json:"role"`
	IsDeleted   bool   `json:"isDeleted"`
}

// IsAdmin возвращает true для сотрудников с административной ролью
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// ErrorResponse модель ошибки от EmployeeService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
