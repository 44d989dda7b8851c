package person

// Response is the public shape of a person, without credentials.
type Response struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	EmployeeCode string `json:"employee_id"`
	Department   string `json:"department"`
}

func ToResponse(p Person) Response {
	return Response{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Role:         string(p.Role),
		EmployeeCode: p.EmployeeCode,
		Department:   p.Department,
	}
}
