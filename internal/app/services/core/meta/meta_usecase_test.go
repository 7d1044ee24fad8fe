package meta

import (
	"context"
	"errors"
	"mediportal-service/internal/app/config"
	"mediportal-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubDiagnosticsRepository struct {
	pingErr     error
	listErr     error
	collections []string
}

func (s *stubDiagnosticsRepository) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s *stubDiagnosticsRepository) ListCollections(ctx context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.collections, nil
}

func newTestUsecase(repo *stubDiagnosticsRepository) *metaUsecase {
	return &metaUsecase{
		DiagnosticsRepository: repo,
		DriverConfig: &config.DriverConfig{
			MongoDB: config.MongoDB{URI: "mongodb://localhost:27017", DbName: "mediportal"},
		},
		Log: zap.NewNop(),
	}
}

func TestDiagnostics(t *testing.T) {
	t.Run("Healthy Store", func(t *testing.T) {
		uc := newTestUsecase(&stubDiagnosticsRepository{
			collections: []string{constvars.MongoCollectionDoctors, constvars.MongoCollectionArticles},
		})

		diagnostics := uc.Diagnostics(context.Background())

		assert.Equal(t, "running", diagnostics.Backend)
		assert.Equal(t, "connected", diagnostics.Database)
		assert.Equal(t, "connected", diagnostics.ConnectionStatus)
		assert.Equal(t, "mediportal", diagnostics.DatabaseName)
		assert.Equal(t, []string{constvars.MongoCollectionDoctors, constvars.MongoCollectionArticles}, diagnostics.Collections)
	})

	t.Run("Unreachable Store", func(t *testing.T) {
		uc := newTestUsecase(&stubDiagnosticsRepository{pingErr: errors.New("connection refused")})

		diagnostics := uc.Diagnostics(context.Background())

		assert.Equal(t, "running", diagnostics.Backend)
		assert.Equal(t, "unreachable: connection refused", diagnostics.Database)
		assert.Equal(t, "not connected", diagnostics.ConnectionStatus)
		assert.Empty(t, diagnostics.Collections)
	})

	t.Run("Collection Listing Failure", func(t *testing.T) {
		uc := newTestUsecase(&stubDiagnosticsRepository{listErr: errors.New("not authorized")})

		diagnostics := uc.Diagnostics(context.Background())

		assert.Equal(t, "connected but degraded: not authorized", diagnostics.Database)
		assert.Equal(t, "connected", diagnostics.ConnectionStatus)
		assert.Empty(t, diagnostics.Collections)
	})
}

func TestSchemas(t *testing.T) {
	uc := newTestUsecase(&stubDiagnosticsRepository{})

	schemas := uc.Schemas()

	collections := make([]string, 0, len(schemas))
	for _, schema := range schemas {
		collections = append(collections, schema.Collection)
	}
	assert.Equal(t, []string{
		constvars.MongoCollectionDoctors,
		constvars.MongoCollectionArticles,
		constvars.MongoCollectionAppointmentRequests,
		constvars.MongoCollectionNewsletterSubscribers,
	}, collections)

	for _, schema := range schemas {
		assert.NotEmpty(t, schema.Fields, schema.Collection)
		for _, field := range schema.Fields {
			assert.NotEqual(t, "_id", field.Name)
			assert.NotEmpty(t, field.Type)
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 100))
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, truncate(string(long), 100), 100)
}
