package dto

// UploadedQuestion is one entry of an uploaded question bank file. The JSON
// field names follow the bank file format the admin tooling produces.
type UploadedQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Domain        string   `json:"domain,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
}

type UploadResponse struct {
	Count    int    `json:"count"`
	TestType string `json:"test_type"`
	TestID   string `json:"test_id"`
}
