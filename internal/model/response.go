package model

// Response records one respondent's ordered answers to a quiz. RespondentRef
// is either a user id in decimal form or a free-text participant name; the
// reference to a user is weak and never cascades. Duplicate rows per
// (quiz, respondent) are permitted; submission always appends.
// swagger:model Response
type Response struct {
	BaseModel
	QuizID        uint       `gorm:"index;not null" json:"quizId"`
	RespondentRef string     `gorm:"size:100;index;not null" json:"respondentRef"`
	Answers       StringList `gorm:"type:json" json:"answers"`
}

func (Response) TableName() string {
	return "responses"
}

// QuestionAnswer pairs a question's text with the answer given to it, for
// response review.
type QuestionAnswer struct {
	QuestionText string `json:"questionText"`
	Answer       string `json:"answer"`
}

// RespondentInfo identifies one respondent who answered a quiz. Name carries
// the user's display name when Ref resolves to a registered user, otherwise
// it repeats the free-text ref.
type RespondentInfo struct {
	Ref  string `json:"ref"`
	Name string `json:"name"`
}
