package quizbuilder

const (
	idPrefix       = "question"
	MaxOptions     = 6
	defaultTitle   = "New Quiz"
	untitledQuiz   = "Untitled quiz"
	untitledPrompt = "Untitled question"
)

type QuizQuestion struct {
	ID             string   `json:"id"`
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	CorrectIndexes []int    `json:"correct_indexes"`
}

func (q QuizQuestion) EntityID() string {
	return q.ID
}

func (q QuizQuestion) CanAddOption() bool {
	return len(q.Options) < MaxOptions
}

type Mode string

const (
	ModeEdit    Mode = "edit"
	ModePreview Mode = "preview"
)
