package classroom

type AddStudentDTO struct {
	Name  string `json:"name" validate:"notblank"`
	Grade string `json:"grade" validate:"notblank"`
}

type GradeDTO struct {
	Score string `json:"score"`
}

type SortDTO struct {
	Mode SortMode `json:"mode" validate:"oneof=none avg-desc avg-asc"`
}

type StudentView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Grade     string   `json:"grade"`
	Scores    []string `json:"scores"`
	HasScores bool     `json:"has_scores"`
	Average   float64  `json:"average"`
	// AverageLabel is the formatted average, or "No grades".
	AverageLabel string `json:"average_label"`
}

type Stats struct {
	Students     int     `json:"students"`
	HasScores    bool    `json:"has_scores"`
	ClassAverage float64 `json:"class_average"`
	Highest      float64 `json:"highest"`
	Lowest       float64 `json:"lowest"`
}

type View struct {
	SortMode SortMode      `json:"sort_mode"`
	Students []StudentView `json:"students"`
	Stats    Stats         `json:"stats"`
}
