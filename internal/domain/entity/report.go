// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is a single submitted safety observation. Reports are write-once:
// no update or delete path exists, so every field is fixed at creation.
type Report struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier of the report.
	ClerkID   string    `json:"clerk_id"`   // The identity of the submitting user.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the report was created.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.

	ReportType                  string `json:"report_type"`
	Status                      string `json:"status"`
	Ship                        string `json:"ship"`
	Observations                string `json:"observations"`
	Cause                       string `json:"cause"`
	ActionTaken                 string `json:"action_taken"`
	Position                    string `json:"position"`
	Location                    string `json:"location"`
	Procedure                   string `json:"procedure"`
	ActionsAndPositions         string `json:"actions_and_positions"`
	Permits                     string `json:"permits"`
	IsolationAndBarriers        string `json:"isolation_and_barriers"`
	PersonalProtectiveEquipment string `json:"personal_protective_equipment"`
	ToolsAndEquipment           string `json:"tools_and_equipment"`
	Housekeeping                string `json:"housekeeping"`
	Others                      string `json:"others"`
}
