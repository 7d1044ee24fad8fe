package meta

import (
	"context"
	"fmt"
	"mediportal-service/internal/app/config"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/app/models"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/dto/responses"
	"mediportal-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type metaUsecase struct {
	DiagnosticsRepository contracts.DiagnosticsRepository
	DriverConfig          *config.DriverConfig
	Log                   *zap.Logger
}

var (
	metaUsecaseInstance contracts.MetaUsecase
	onceMetaUsecase     sync.Once
)

func NewMetaUsecase(
	diagnosticsRepository contracts.DiagnosticsRepository,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.MetaUsecase {
	onceMetaUsecase.Do(func() {
		metaUsecaseInstance = &metaUsecase{
			DiagnosticsRepository: diagnosticsRepository,
			DriverConfig:          driverConfig,
			Log:                   logger,
		}
	})
	return metaUsecaseInstance
}

// Diagnostics probes the store and reports degraded text instead of failing.
func (uc *metaUsecase) Diagnostics(ctx context.Context) *responses.Diagnostics {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	diagnostics := &responses.Diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     uc.DriverConfig.MongoDB.DbName,
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if utils.GetEnvString("DATABASE_URL", "") != "" {
		diagnostics.DatabaseURL = "set"
	}

	if err := uc.DiagnosticsRepository.Ping(ctx); err != nil {
		uc.Log.Warn("metaUsecase.Diagnostics store unreachable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		diagnostics.Database = fmt.Sprintf("unreachable: %s", truncate(err.Error(), 100))
		return diagnostics
	}
	diagnostics.ConnectionStatus = "connected"

	names, err := uc.DiagnosticsRepository.ListCollections(ctx)
	if err != nil {
		uc.Log.Warn("metaUsecase.Diagnostics failed to list collections",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		diagnostics.Database = fmt.Sprintf("connected but degraded: %s", truncate(err.Error(), 100))
		return diagnostics
	}

	diagnostics.Database = "connected"
	diagnostics.Collections = names
	return diagnostics
}

// Schemas lists each registered entity with its document field names and the
// Go type text of every field. The type strings are a debugging aid, not a
// stable contract.
func (uc *metaUsecase) Schemas() []responses.CollectionSchema {
	schemas := make([]responses.CollectionSchema, 0, len(models.SchemaRegistry))
	for _, registration := range models.SchemaRegistry {
		fields := make([]responses.SchemaField, 0, registration.Shape.NumField())
		for i := 0; i < registration.Shape.NumField(); i++ {
			structField := registration.Shape.Field(i)
			name, ok := models.FieldName(structField)
			if !ok || name == "_id" {
				continue
			}
			fields = append(fields, responses.SchemaField{
				Name: name,
				Type: structField.Type.String(),
			})
		}
		schemas = append(schemas, responses.CollectionSchema{
			Collection: registration.Collection,
			Fields:     fields,
		})
	}
	return schemas
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
