package model

// swagger:model ProjectIdea
type ProjectIdea struct {
	BaseModel
	Title        string   `gorm:"size:255;not null" json:"title"`
	Summary      string   `gorm:"size:1000" json:"summary"`
	Technologies []string `gorm:"serializer:json;type:json" json:"technologies"`
	Roadmap      []string `gorm:"serializer:json;type:json" json:"roadmap"`

	// ExtraTechnologies is derived per request by the recommender: the
	// technologies of this idea the caller does not know. Never persisted.
	ExtraTechnologies []string `gorm:"-" json:"extraTechnologies"`
}

func (ProjectIdea) TableName() string {
	return "project_ideas"
}
