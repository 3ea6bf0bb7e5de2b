package events

import "time"

const ApplicationSubmittedTopic = "hr.leave.application.v1"

type ApplicationSubmittedEvent struct {
	EventType      string    `json:"event_type"`
	ApplicationID  int       `json:"application_id"`
	EmployeeID     int       `json:"employee_id"`
	LeaveStartDate string    `json:"leave_start_date"`
	LeaveEndDate   string    `json:"leave_end_date"`
	OccurredAt     time.Time `json:"occurred_at"`
}
