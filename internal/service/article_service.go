package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const articleCacheTTL = 10 * time.Minute

type ArticleService struct {
	ArticleRepo *repository.ArticleRepository
	Redis       *redis.Client
}

func NewArticleService(articleRepo *repository.ArticleRepository, rdb *redis.Client) *ArticleService {
	return &ArticleService{
		ArticleRepo: articleRepo,
		Redis:       rdb,
	}
}

func articleCacheKey(id uint) string {
	return fmt.Sprintf("article:%d", id)
}

func (s *ArticleService) GetAll() ([]model.Article, error) {
	return s.ArticleRepo.FindAll()
}

// Get serves article details from redis when possible, falling back to the
// database and repopulating the cache.
func (s *ArticleService) Get(ctx context.Context, id uint) (*model.Article, error) {
	if s.Redis != nil {
		if data, err := s.Redis.Get(ctx, articleCacheKey(id)).Bytes(); err == nil {
			var article model.Article
			if err := json.Unmarshal(data, &article); err == nil {
				return &article, nil
			}
		}
	}

	article, err := s.ArticleRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrArticleNotFound
	}

	if s.Redis != nil {
		if data, err := json.Marshal(article); err == nil {
			s.Redis.Set(ctx, articleCacheKey(id), data, articleCacheTTL)
		}
	}

	return article, nil
}

// Save persists the article and drops the cached copy. Timestamps come
// from gorm, never from the client payload.
func (s *ArticleService) Save(ctx context.Context, article *model.Article) error {
	var err error
	if article.ID == 0 {
		err = s.ArticleRepo.Create(article)
	} else {
		err = s.ArticleRepo.Update(article)
	}
	if err != nil {
		return err
	}

	s.Invalidate(ctx, article.ID)
	return nil
}

func (s *ArticleService) Delete(ctx context.Context, id uint) error {
	if err := s.ArticleRepo.Delete(id); err != nil {
		return err
	}
	s.Invalidate(ctx, id)
	return nil
}

func (s *ArticleService) Search(query string) ([]model.Article, error) {
	return s.ArticleRepo.FullTextSearch(query)
}

// Invalidate drops the cached copy. Callers that mutate articles outside
// this service, such as the rating recompute, use it to keep reads fresh.
func (s *ArticleService) Invalidate(ctx context.Context, id uint) {
	if s.Redis != nil {
		s.Redis.Del(ctx, articleCacheKey(id))
	}
}
