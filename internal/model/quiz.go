package model

type QuestionType string

const (
	ShortAnswer    QuestionType = "short_answer"
	TrueFalse      QuestionType = "true_false"
	MultipleChoice QuestionType = "multiple_choice"
)

func (t QuestionType) Valid() bool {
	return t == ShortAnswer || t == TrueFalse || t == MultipleChoice
}

// TrueFalseOptions is the fixed option set every true/false question stores.
var TrueFalseOptions = StringList{"True", "False"}

// Quiz is append-only: no update or delete exists once it is saved.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	AuthorID uint   `gorm:"index" json:"authorId"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question belongs to exactly one quiz; Position preserves authoring order.
// Options is empty for short-answer questions.
// swagger:model Question
type Question struct {
	BaseModel
	QuizID   uint         `gorm:"index;not null" json:"quizId"`
	Position int          `gorm:"not null" json:"position"`
	Text     string       `gorm:"type:text;not null" json:"text"`
	Type     QuestionType `gorm:"size:50;not null" json:"type"`
	Options  StringList   `gorm:"type:json" json:"options"`
}

func (Question) TableName() string {
	return "questions"
}
