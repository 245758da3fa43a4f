package model

// Comment rows form a tree through ParentID. The tree is kept as an arena
// of rows indexed by id, parents referenced by id only, so loading a
// comment never pulls in an object cycle.
//
// swagger:model Comment
type Comment struct {
	BaseModel
	Content   string `gorm:"type:text;not null" json:"content"`
	AuthorID  uint   `gorm:"not null;index" json:"authorId"`
	ArticleID uint   `gorm:"not null;index" json:"articleId"`
	ParentID  *uint  `gorm:"index" json:"parentId,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
