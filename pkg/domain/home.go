package domain

// Home is the hero section of the portfolio landing page. There is one per site.
type Home struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	HeroImage string `json:"heroImage"`
}

// About is the about/resume section. There is one per site.
type About struct {
	Content       string `json:"content"`
	FrontendFocus string `json:"frontendFocus,omitempty"`
	Performance   string `json:"performance,omitempty"`
	ResumePath    string `json:"resumePath,omitempty"`
}
