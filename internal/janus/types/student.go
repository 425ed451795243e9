package types

type Student struct {
	Name             string `json:"name"`
	EnrollmentNumber string `json:"enrollment_number"`
	Department       string `json:"department"`
	MorShift         bool   `json:"mor_shift"`
	Batch            string `json:"batch"`
	Section          string `json:"section,omitempty"`
	Semester         int    `json:"semester"`
	PhoneNo          string `json:"phone_no,omitempty"`
	Address          string `json:"address,omitempty"`
}

type AddStudentRequest struct {
	Name             string `json:"name"`
	EnrollmentNumber string `json:"enrollment_number"`
	Department       string `json:"department"`
	MorShift         *bool  `json:"mor_shift,omitempty"` // defaults to true
	Batch            string `json:"batch"`
	Section          string `json:"section,omitempty"`
	Semester         int    `json:"semester,omitempty"` // defaults to 1
	PhoneNo          string `json:"phone_no,omitempty"`
	Address          string `json:"address,omitempty"`
}

type StudentResponse struct {
	OK      bool    `json:"ok"`
	Student Student `json:"student"`
}

type StudentListResponse struct {
	OK       bool      `json:"ok"`
	Total    int       `json:"total"`
	Students []Student `json:"students"`
}
