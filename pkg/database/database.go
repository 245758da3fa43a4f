package database

import (
	"fmt"
	"log"

	"learnify_backend/internal/config"
	"learnify_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Schema changes are opt-in for release deployments.
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Resource{},
		&model.Article{},
		&model.Comment{},
		&model.PdfUpload{},
		&model.Rating{},
		&model.ProjectIdea{},
	)

	if err != nil {
		return nil, err
	}

	// AutoMigrate cannot express FULLTEXT indexes; the boolean-mode search
	// queries need them.
	db.Exec("CREATE FULLTEXT INDEX idx_articles_fulltext ON articles(title, content)")
	db.Exec("CREATE FULLTEXT INDEX idx_pdf_uploads_fulltext ON pdf_uploads(file_name, extracted_text)")

	log.Println("Database migration completed")

	// Seed a few project ideas so the recommender has something to match
	// against on a fresh install.
	var count int64
	db.Model(&model.ProjectIdea{}).Count(&count)
	if count == 0 {
		defaultIdeas := []model.ProjectIdea{
			{
				Title:        "Job board",
				Summary:      "A small job board with employer and candidate accounts.",
				Technologies: []string{"java", "spring", "mysql", "react", "docker"},
				Roadmap:      []string{"Design schema", "Build REST API", "Build UI", "Deploy"},
			},
			{
				Title:        "Recipe sharing site",
				Summary:      "Users post recipes, rate them and comment.",
				Technologies: []string{"python", "django", "postgres"},
				Roadmap:      []string{"Models", "Views", "Ratings", "Search"},
			},
			{
				Title:        "Expense tracker",
				Summary:      "Track personal expenses with monthly charts.",
				Technologies: []string{"javascript", "node", "mongodb", "chartjs"},
				Roadmap:      []string{"Auth", "CRUD", "Charts"},
			},
		}
		for _, idea := range defaultIdeas {
			db.Create(&idea)
		}
	}

	return db, nil
}
