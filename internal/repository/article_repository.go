package repository

import (
	"learnify_backend/internal/model"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	DB *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{DB: db}
}

func (r *ArticleRepository) Create(article *model.Article) error {
	return r.DB.Create(article).Error
}

func (r *ArticleRepository) FindByID(id uint) (*model.Article, error) {
	var article model.Article
	err := r.DB.First(&article, id).Error
	return &article, err
}

func (r *ArticleRepository) FindAll() ([]model.Article, error) {
	var articles []model.Article
	err := r.DB.Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) Update(article *model.Article) error {
	return r.DB.Save(article).Error
}

func (r *ArticleRepository) Delete(id uint) error {
	return r.DB.Select("Comments", "Ratings").Delete(&model.Article{BaseModel: model.BaseModel{ID: id}}).Error
}

// FullTextSearch matches the boolean-mode FULLTEXT index over
// (title, content). MySQL only.
func (r *ArticleRepository) FullTextSearch(query string) ([]model.Article, error) {
	var articles []model.Article
	err := r.DB.Raw(
		"SELECT * FROM articles WHERE MATCH(title, content) AGAINST(? IN BOOLEAN MODE)",
		query,
	).Scan(&articles).Error
	return articles, err
}
