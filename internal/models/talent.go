package models

// Talent is a candidate recommended for a job requisition. The roster for a
// job is returned by the talents endpoint and lives only for the current
// screening view.
type Talent struct {
	EmployeeID          int     `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	Department          string  `json:"employee_department"`
	Role                string  `json:"role"`
	Education           string  `json:"education"`
	Experience          float64 `json:"experience"`
	Skills              string  `json:"skills"`
	SkillArea           string  `json:"skill_area"`
	ProfessionalSummary string  `json:"professional_summary"`
	Certifications      string  `json:"certifications"`
	Location            string  `json:"location"`
	EmailID             string  `json:"email_id"`
	CurrentAvailability string  `json:"current_availability"`
	MatchScore          float64 `json:"match_score"`
}

// TalentResponse is the payload of GET /jobs/{id}/talents: the job
// description, the recommended candidate roster, and the opaque screening
// session id that scopes later chat queries.
type TalentResponse struct {
	JobDesc   RawJob   `json:"jobDesc"`
	SessionID string   `json:"session_id"`
	Talents   []Talent `json:"talents"`
}
