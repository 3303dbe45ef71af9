package quizbuilder

import "github.com/saulo-duarte/exercise-server/internal/listops"

type TitleDTO struct {
	Title string `json:"title"`
}

type TextDTO struct {
	Text string `json:"text"`
}

type MoveDTO struct {
	Direction listops.Direction `json:"direction" validate:"oneof=up down"`
}

type QuestionView struct {
	QuizQuestion
	Position     int  `json:"position"`
	CanMoveUp    bool `json:"can_move_up"`
	CanMoveDown  bool `json:"can_move_down"`
	CanAddOption bool `json:"can_add_option"`
}

type PreviewOption struct {
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type PreviewQuestion struct {
	ID       string          `json:"id"`
	Position int             `json:"position"`
	Text     string          `json:"text"`
	Options  []PreviewOption `json:"options"`
}

type Stats struct {
	Questions      int `json:"questions"`
	TotalOptions   int `json:"total_options"`
	WithoutCorrect int `json:"without_correct_answer"`
}

type View struct {
	Mode      Mode              `json:"mode"`
	Title     string            `json:"title"`
	Questions []QuestionView    `json:"questions"`
	Preview   []PreviewQuestion `json:"preview,omitempty"`
	Stats     Stats             `json:"stats"`
}
