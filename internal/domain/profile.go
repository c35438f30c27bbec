package domain

// Profile holds the applicant details the apply flow feeds into
// application forms. Loaded from a JSON file the user maintains.
type Profile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	CurrentCompany string `json:"current_company"`
	LinkedIn       string `json:"linkedin"`
	Gender         string `json:"gender"`
	Race           string `json:"race"`
	VeteranStatus  string `json:"veteran_status"`
	Authorized     string `json:"authorized"`
	Sponsor        string `json:"sponsor"`
	ResumePath     string `json:"resume_path"`
}
