package employee

import "time"

type UpdateEmployeeNameRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// EmployeeResponse is the public projection: everything except secret.
type EmployeeResponse struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"date_of_birth"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth.UTC().Format(time.RFC3339),
	}
}
