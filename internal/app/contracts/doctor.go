package contracts

import (
	"context"
	"mediportal-service/internal/app/models"
	"mediportal-service/internal/pkg/dto/requests"
	"mediportal-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, request *requests.ListDoctors) ([]responses.Doctor, error)
}

type DoctorRepository interface {
	Find(ctx context.Context, filter bson.M, limit int) ([]models.Doctor, error)
}
