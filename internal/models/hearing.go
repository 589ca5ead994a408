package models

// HearingSlot is one occupied appointment on the hearing calendar.
//
// Manual hearings are pinned by an administrator and persisted; they carry an
// ID. Automatic hearings are produced by the schedule compiler on every run,
// are never persisted and have no ID of their own.
type HearingSlot struct {
	ID          string `json:"id,omitempty"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"`
	Claimant    string `json:"claimant"`
	Defendant   string `json:"defendant"`
	ComplaintID string `json:"complaintId,omitempty"`
	IsManual    bool   `json:"isManual"`
}
