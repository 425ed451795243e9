package types

// RosterStudent field names follow the dashboard contract, which renders
// them verbatim.
type RosterStudent struct {
	Name     string `json:"name"`
	Dept     string `json:"dept"`
	Batch    string `json:"batch"`
	Semester int    `json:"semester"`
}

type RosterResponse struct {
	TotalInside    int             `json:"totalInside"`
	StudentsInside []RosterStudent `json:"studentsInside"`
}
