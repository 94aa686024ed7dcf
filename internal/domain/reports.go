package domain

// ScoutingReport is a free-text evaluation of one player. It is the only
// mutable entity in the system: new reports are appended during a session and
// never written back to the dataset.
type ScoutingReport struct {
	ReportID string  `json:"reportId"`
	Scout    string  `json:"scout"`
	Report   string  `json:"report"`
	PlayerID int     `json:"playerId"`
	Date     *string `json:"date,omitempty"`
}
