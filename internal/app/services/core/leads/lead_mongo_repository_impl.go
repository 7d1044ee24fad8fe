package leads

import (
	"context"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/app/models"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LeadMongoRepository struct {
	AppointmentCollection *mongo.Collection
	NewsletterCollection  *mongo.Collection
}

func NewLeadMongoRepository(db *mongo.Client, dbName string) contracts.LeadRepository {
	return &LeadMongoRepository{
		AppointmentCollection: db.Database(dbName).Collection(constvars.MongoCollectionAppointmentRequests),
		NewsletterCollection:  db.Database(dbName).Collection(constvars.MongoCollectionNewsletterSubscribers),
	}
}

func (repo *LeadMongoRepository) InsertAppointmentRequest(ctx context.Context, appointment *models.AppointmentRequest) (string, error) {
	result, err := repo.AppointmentCollection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return insertedIDHex(result)
}

func (repo *LeadMongoRepository) InsertNewsletterSubscriber(ctx context.Context, subscriber *models.NewsletterSubscriber) (string, error) {
	result, err := repo.NewsletterCollection.InsertOne(ctx, subscriber)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return insertedIDHex(result)
}

func insertedIDHex(result *mongo.InsertOneResult) (string, error) {
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(nil)
	}
	return objectID.Hex(), nil
}
