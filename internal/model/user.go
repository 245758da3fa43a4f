package model

type UserRole string

const (
	Student    UserRole = "student"
	Instructor UserRole = "instructor"
	Admin      UserRole = "admin"
)

// Authority returns the role-derived authority string attached to the
// request context by the authentication gate.
func (r UserRole) Authority() string {
	switch r {
	case Student:
		return "ROLE_STUDENT"
	case Instructor:
		return "ROLE_INSTRUCTOR"
	case Admin:
		return "ROLE_ADMIN"
	}
	return ""
}

func (r UserRole) Valid() bool {
	return r == Student || r == Instructor || r == Admin
}

// swagger:model User
type User struct {
	BaseModel
	Username  string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email     string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	FirstName string   `gorm:"size:100" json:"firstName"`
	LastName  string   `gorm:"size:100" json:"lastName"`
	Role      UserRole `gorm:"size:20;default:'student'" json:"role"`
	Active    bool     `gorm:"default:true" json:"active"`
}

func (User) TableName() string {
	return "users"
}
