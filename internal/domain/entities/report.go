package entities

// MechanicProductivityRow is one group of the mechanic productivity report:
// order count per mechanic over an opening-date range, joined with the
// mechanic's name.
type MechanicProductivityRow struct {
	Nome        string `json:"nome"`
	Sobrenome   string `json:"sobrenome"`
	TotalOrdens int    `json:"total_ordens"`
}
