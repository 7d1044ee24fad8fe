package articles

import (
	"context"
	"errors"
	"mediportal-service/internal/app/models"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/dto/requests"
	"mediportal-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubArticleRepository struct {
	articles   []models.Article
	bySlug     *models.Article
	err        error
	lastFilter bson.M
	lastLimit  int
}

func (s *stubArticleRepository) Find(ctx context.Context, filter bson.M, limit int) ([]models.Article, error) {
	s.lastFilter = filter
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.articles, nil
}

func (s *stubArticleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bySlug, nil
}

func TestArticleUsecaseListArticles(t *testing.T) {
	t.Run("Maps Documents To Responses", func(t *testing.T) {
		repo := &stubArticleRepository{
			articles: []models.Article{
				{ID: primitive.NewObjectID(), Title: "CBD basics", Slug: "cbd-basics"},
				{ID: primitive.NewObjectID(), Title: "Dosage guide", Slug: "dosage-guide"},
			},
		}
		uc := &articleUsecase{ArticleRepository: repo, Log: zap.NewNop()}

		result, err := uc.ListArticles(context.Background(), &requests.ListArticles{Limit: 20})

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "cbd-basics", result[0].Slug)
		assert.NotEmpty(t, result[0].ID, "identifier must be surfaced as a string")
		assert.Equal(t, 20, repo.lastLimit)
		assert.Equal(t, bson.M{}, repo.lastFilter)
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		uc := &articleUsecase{ArticleRepository: &stubArticleRepository{articles: []models.Article{}}, Log: zap.NewNop()}

		result, err := uc.ListArticles(context.Background(), &requests.ListArticles{Limit: 20})

		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repoErr := errors.New("cursor failure")
		uc := &articleUsecase{ArticleRepository: &stubArticleRepository{err: repoErr}, Log: zap.NewNop()}

		_, err := uc.ListArticles(context.Background(), &requests.ListArticles{Limit: 20})

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestArticleUsecaseFindArticleBySlug(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		article := &models.Article{ID: primitive.NewObjectID(), Title: "CBD basics", Slug: "cbd-basics"}
		uc := &articleUsecase{ArticleRepository: &stubArticleRepository{bySlug: article}, Log: zap.NewNop()}

		result, err := uc.FindArticleBySlug(context.Background(), "cbd-basics")

		assert.NoError(t, err)
		assert.Equal(t, "cbd-basics", result.Slug)
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := &articleUsecase{ArticleRepository: &stubArticleRepository{}, Log: zap.NewNop()}

		_, err := uc.FindArticleBySlug(context.Background(), "missing")

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
