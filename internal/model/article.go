package model

// swagger:model Article
type Article struct {
	BaseModel
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	AuthorID uint   `gorm:"not null;index" json:"authorId"`
	CourseID uint   `gorm:"not null;index" json:"courseId"`

	// Derived rating stats, recomputed by the rating service on every vote.
	AverageRating float64 `gorm:"default:0" json:"averageRating"`
	VoteCount     int     `gorm:"default:0" json:"voteCount"`

	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Ratings  []Rating  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Article) TableName() string {
	return "articles"
}
