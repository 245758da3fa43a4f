package model

// Rating targets exactly one of ArticleID or PdfID. The composite unique
// indexes back the one-rating-per-(user,target) invariant; a repeat vote
// updates the existing row in place.
//
// swagger:model Rating
type Rating struct {
	BaseModel
	Value     int   `gorm:"not null" json:"value"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_user_article;uniqueIndex:idx_user_pdf" json:"userId"`
	ArticleID *uint `gorm:"uniqueIndex:idx_user_article" json:"articleId,omitempty"`
	PdfID     *uint `gorm:"uniqueIndex:idx_user_pdf" json:"pdfId,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}
