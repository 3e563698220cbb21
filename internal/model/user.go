package model

type UserRole string

const (
	Author     UserRole = "author"
	Respondent UserRole = "respondent"
)

// Valid reports whether the role is one of the two supported roles. Role is
// a closed set; callers must not branch on raw strings.
func (r UserRole) Valid() bool {
	return r == Author || r == Respondent
}

// swagger:model User
type User struct {
	BaseModel
	Name         string   `gorm:"size:100;not null" json:"name"`
	Username     string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string   `gorm:"size:100;not null" json:"-"`
	Role         UserRole `gorm:"size:20;not null" json:"role"`
}

func (User) TableName() string {
	return "users"
}
