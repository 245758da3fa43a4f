package model

import (
	"time"

	"gorm.io/gorm"
)

// swagger:model PdfUpload
type PdfUpload struct {
	BaseModel
	FileName      string    `gorm:"size:255" json:"fileName"`
	FilePath      string    `gorm:"size:255" json:"filePath"`
	ExtractedText string    `gorm:"type:longtext" json:"extractedText"`
	UserID        uint      `gorm:"not null;index" json:"userId"`
	CourseID      uint      `gorm:"not null;index" json:"courseId"`
	UploadDate    time.Time `json:"uploadDate"`

	AverageRating float64 `gorm:"default:0" json:"averageRating"`
	VoteCount     int     `gorm:"default:0" json:"voteCount"`

	Reported bool `gorm:"default:false" json:"reported"`
	Approved bool `gorm:"default:false" json:"approved"`

	Ratings []Rating `gorm:"foreignKey:PdfID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PdfUpload) TableName() string {
	return "pdf_uploads"
}

func (p *PdfUpload) BeforeCreate(tx *gorm.DB) error {
	if p.UploadDate.IsZero() {
		p.UploadDate = time.Now()
	}
	return nil
}
