package articles

import (
	"context"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/app/models"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ArticleMongoRepository struct {
	Collection *mongo.Collection
}

func NewArticleMongoRepository(db *mongo.Client, dbName string) contracts.ArticleRepository {
	return &ArticleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionArticles),
	}
}

// Find returns matches in storage-default order; no sort is applied, so the
// order is unspecified rather than guaranteed insertion order.
func (repo *ArticleMongoRepository) Find(ctx context.Context, filter bson.M, limit int) ([]models.Article, error) {
	articles := []models.Article{}
	findOptions := options.Find().SetLimit(int64(limit))
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &articles)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return articles, nil
}

func (repo *ArticleMongoRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := repo.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &article, nil
}
