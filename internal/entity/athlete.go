package entity

type AthleteInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Sport      string `json:"sport"`
	Position   string `json:"position"`
	School     string `json:"school"`
	GradYear   string `json:"grad_year"`
	GPA        string `json:"gpa"`
	Stats      string `json:"stats"`
	Highlights string `json:"highlights,omitempty"`
}

type CoachInfo struct {
	CoachName string `json:"coach_name"`
	College   string `json:"college"`
	Email     string `json:"email"`
}

// GeneratedEmail is the parsed draft returned by the text generator.
type GeneratedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
