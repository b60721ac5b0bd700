package model

// Question is a quiz question as shown to the player. Correctness flags are
// stripped before the definition leaves the server.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Choices []Choice `json:"choices"`
}

type Choice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type CreateQuizRequest struct {
	Title             string         `json:"title"`
	Type              string         `json:"type"`
	ModuleType        string         `json:"module_type"`
	ModuleID          string         `json:"module_id"`
	PointsPerQuestion uint64         `json:"points_per_question"`
	ValidationData    map[string]any `json:"validation_data"`
}

type CreateQuizResponse struct {
	ID string `json:"id"`
}

type StartQuizRequest struct {
	QuizID string `json:"quiz_id"`
}

type StartQuizResponse struct {
	ID        string     `json:"id"`
	QuizID    string     `json:"quiz_id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type Answer struct {
	QuestionID string   `json:"question_id"`
	ChoiceIDs  []string `json:"choice_ids"`

	// TimeTaken is the answer time in seconds.
	TimeTaken int `json:"time_taken"`
}

type SubmitQuizRequest struct {
	QuizInstanceID string   `json:"quiz_instance_id"`
	Answers        []Answer `json:"answers"`
}

type SubmitQuizResponse struct {
	ID             string  `json:"id"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
	TotalPoints    uint64  `json:"total_points"`
}
