package meta

import (
	"context"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DiagnosticsMongoRepository struct {
	Client *mongo.Client
	DbName string
}

func NewDiagnosticsMongoRepository(db *mongo.Client, dbName string) contracts.DiagnosticsRepository {
	return &DiagnosticsMongoRepository{
		Client: db,
		DbName: dbName,
	}
}

func (repo *DiagnosticsMongoRepository) Ping(ctx context.Context) error {
	return repo.Client.Ping(ctx, nil)
}

func (repo *DiagnosticsMongoRepository) ListCollections(ctx context.Context) ([]string, error) {
	names, err := repo.Client.Database(repo.DbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return names, nil
}
