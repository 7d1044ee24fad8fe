package contracts

import (
	"context"
	"mediportal-service/internal/app/models"
	"mediportal-service/internal/pkg/dto/requests"
	"mediportal-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type ArticleUsecase interface {
	ListArticles(ctx context.Context, request *requests.ListArticles) ([]responses.Article, error)
	FindArticleBySlug(ctx context.Context, slug string) (*responses.Article, error)
}

type ArticleRepository interface {
	// Find returns up to limit documents matching filter in storage-default
	// order. Zero matches is an empty slice, not an error.
	Find(ctx context.Context, filter bson.M, limit int) ([]models.Article, error)
	// FindBySlug returns (nil, nil) when no document matches. Duplicate slugs
	// are not prevented at the data layer; the store's first match wins.
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
}
