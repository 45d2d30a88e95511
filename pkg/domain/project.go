package domain

// Project is a portfolio project card.
type Project struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	RepoLink    string   `json:"repoLink,omitempty"`
	DemoLink    string   `json:"demoLink,omitempty"`
	Featured    bool     `json:"featured"`
	Images      []string `json:"images,omitempty"` // stored asset paths
}
