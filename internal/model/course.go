package model

type CourseType string

const (
	CourseJFS CourseType = "JFS"
	CoursePFS CourseType = "PFS"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title       string     `gorm:"size:100;not null" json:"title"`
	Type        CourseType `gorm:"size:10" json:"type"`
	Description string     `gorm:"type:text" json:"description"`

	Lessons    []Lesson    `gorm:"constraint:OnDelete:CASCADE" json:"lessons,omitempty"`
	Articles   []Article   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PdfUploads []PdfUpload `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}
