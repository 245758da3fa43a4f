package model

type ResourceType string

const (
	ResourcePDF      ResourceType = "PDF"
	ResourceVideo    ResourceType = "VIDEO"
	ResourceLink     ResourceType = "LINK"
	ResourceDocument ResourceType = "DOCUMENT"
	ResourceSlides   ResourceType = "SLIDES"
)

// swagger:model Resource
type Resource struct {
	BaseModel
	Name     string       `gorm:"size:255;not null" json:"name"`
	Type     ResourceType `gorm:"size:20" json:"type"`
	URL      string       `gorm:"type:text" json:"url"`
	LessonID uint         `gorm:"not null;index" json:"lessonId"`
}

func (Resource) TableName() string {
	return "resources"
}
