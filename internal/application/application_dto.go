package application

import (
	"time"

	"go-leave/internal/employee"
	"go-leave/internal/shared/response"
)

// CreateApplicationRequest is one element of a submission batch. omitempty
// keeps the echo of an invalid item limited to the fields the caller sent.
type CreateApplicationRequest struct {
	LeaveStartDate string `json:"leave_start_date,omitempty"`
	LeaveEndDate   string `json:"leave_end_date,omitempty"`
	EmployeeID     int    `json:"employeeId,omitempty"`
}

type SearchApplicationsQuery struct {
	EmployeeID *int   `form:"employeeId"`
	FirstName  string `form:"firstName"`
	LastName   string `form:"lastName"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
}

type ApplicationResponse struct {
	ID             int                        `json:"id"`
	LeaveStartDate string                     `json:"leave_start_date"`
	LeaveEndDate   string                     `json:"leave_end_date"`
	EmployeeID     int                        `json:"employeeId"`
	Employee       *employee.EmployeeResponse `json:"employee,omitempty"`
}

type SearchApplicationsResult struct {
	Data       []ApplicationResponse `json:"data"`
	Pagination response.Pagination   `json:"pagination"`
}

func toResponse(a Application, includeEmployee bool) ApplicationResponse {
	resp := ApplicationResponse{
		ID:             a.ID,
		LeaveStartDate: a.LeaveStartDate.UTC().Format(time.RFC3339),
		LeaveEndDate:   a.LeaveEndDate.UTC().Format(time.RFC3339),
		EmployeeID:     a.EmployeeID,
	}
	if includeEmployee {
		emp := employee.ToResponse(a.Employee)
		resp.Employee = &emp
	}
	return resp
}

func mapToSearchResponses(apps []Application) []ApplicationResponse {
	resp := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		resp = append(resp, toResponse(a, true))
	}
	return resp
}
