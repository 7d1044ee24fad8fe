package contracts

import (
	"context"
	"encoding/json"
	"mediportal-service/internal/app/models"
	"mediportal-service/internal/pkg/dto/requests"
	"mediportal-service/internal/pkg/dto/responses"
)

type LeadUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Lead, error)
	SubscribeNewsletter(ctx context.Context, request *requests.SubscribeNewsletter) (*responses.Lead, error)
}

type LeadRepository interface {
	// Each insert is a single round trip; the returned id is the store-assigned
	// identifier as a hex string.
	InsertAppointmentRequest(ctx context.Context, appointment *models.AppointmentRequest) (string, error)
	InsertNewsletterSubscriber(ctx context.Context, subscriber *models.NewsletterSubscriber) (string, error)
}

// LeadEvent is the message published to the lead queue after a successful
// write. Payload holds the persisted document as JSON.
type LeadEvent struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection"`
	Payload    json.RawMessage `json:"payload"`
}

// LeadNotifier delivery is best-effort: callers log publish failures and never
// fail the originating request.
type LeadNotifier interface {
	PublishLeadCaptured(ctx context.Context, event LeadEvent) error
}
