package contracts

import (
	"context"
	"mediportal-service/internal/pkg/dto/responses"
)

type MetaUsecase interface {
	// Diagnostics never fails: store errors degrade the reported status.
	Diagnostics(ctx context.Context) *responses.Diagnostics
	Schemas() []responses.CollectionSchema
}

type DiagnosticsRepository interface {
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
}
