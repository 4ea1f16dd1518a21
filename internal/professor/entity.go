package professor

type StudentQuestion struct {
	Question string `json:"question" validate:"required"`
}

type ProfessorContent struct {
	Definition  string   `json:"definition"`
	KeyNotes    []string `json:"key_notes"`
	Application string   `json:"application"`
}

type LectureResponse struct {
	Answer  ProfessorContent `json:"answer"`
	VideoID *string          `json:"video_id"`
}
