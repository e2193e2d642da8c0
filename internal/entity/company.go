package entity

// CompanyProfile holds the descriptive metadata shown in the dashboard header.
type CompanyProfile struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Website string `json:"website"`
	LogoURL string `json:"logo_url"`
}
