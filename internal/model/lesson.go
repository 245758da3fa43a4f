package model

// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title         string `gorm:"size:100;not null" json:"title"`
	SequenceOrder int    `gorm:"not null;default:0" json:"sequenceOrder"`
	CourseID      uint   `gorm:"not null;index" json:"courseId"`

	Resources []Resource `gorm:"constraint:OnDelete:CASCADE" json:"resources,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}
