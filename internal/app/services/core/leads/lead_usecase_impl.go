package leads

import (
	"context"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/app/models"
	"mediportal-service/internal/pkg/constvars"
	"mediportal-service/internal/pkg/dto/requests"
	"mediportal-service/internal/pkg/dto/responses"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type leadUsecase struct {
	LeadRepository contracts.LeadRepository
	LeadNotifier   contracts.LeadNotifier
	Log            *zap.Logger
}

var (
	leadUsecaseInstance contracts.LeadUsecase
	onceLeadUsecase     sync.Once
)

func NewLeadUsecase(
	leadRepository contracts.LeadRepository,
	leadNotifier contracts.LeadNotifier,
	logger *zap.Logger,
) contracts.LeadUsecase {
	onceLeadUsecase.Do(func() {
		leadUsecaseInstance = &leadUsecase{
			LeadRepository: leadRepository,
			LeadNotifier:   leadNotifier,
			Log:            logger,
		}
	})
	return leadUsecaseInstance
}

func (uc *leadUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Lead, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appointment := &models.AppointmentRequest{
		PatientName:      request.PatientName,
		Email:            request.Email,
		Phone:            request.Phone,
		Pathology:        request.Pathology,
		ConsultationType: request.ConsultationType,
		PreferredDates:   request.PreferredDates,
		State:            request.State,
		City:             request.City,
		DoctorID:         request.DoctorID,
		Notes:            request.Notes,
	}

	leadID, err := uc.LeadRepository.InsertAppointmentRequest(ctx, appointment)
	if err != nil {
		uc.Log.Error("leadUsecase.CreateAppointment error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notifyLeadCaptured(ctx, requestID, leadID, constvars.MongoCollectionAppointmentRequests, appointment)

	uc.Log.Info("leadUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("lead_id", leadID),
	)
	return &responses.Lead{Status: constvars.ResponseOK, ID: leadID}, nil
}

func (uc *leadUsecase) SubscribeNewsletter(ctx context.Context, request *requests.SubscribeNewsletter) (*responses.Lead, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	subscriber := &models.NewsletterSubscriber{
		Email:     request.Email,
		Interests: request.Interests,
	}

	leadID, err := uc.LeadRepository.InsertNewsletterSubscriber(ctx, subscriber)
	if err != nil {
		uc.Log.Error("leadUsecase.SubscribeNewsletter error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.notifyLeadCaptured(ctx, requestID, leadID, constvars.MongoCollectionNewsletterSubscribers, subscriber)

	uc.Log.Info("leadUsecase.SubscribeNewsletter succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("lead_id", leadID),
	)
	return &responses.Lead{Status: constvars.ResponseOK, ID: leadID}, nil
}

// notifyLeadCaptured publishes the persisted lead to the queue. Best-effort: a
// publish failure is logged and never fails the originating write.
func (uc *leadUsecase) notifyLeadCaptured(ctx context.Context, requestID, leadID, collection string, document interface{}) {
	payload, err := json.Marshal(document)
	if err != nil {
		uc.Log.Warn("leadUsecase.notifyLeadCaptured error marshaling payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	event := contracts.LeadEvent{
		ID:         leadID,
		Collection: collection,
		Payload:    payload,
	}
	if err := uc.LeadNotifier.PublishLeadCaptured(ctx, event); err != nil {
		uc.Log.Warn("leadUsecase.notifyLeadCaptured error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("lead_id", leadID),
			zap.Error(err),
		)
	}
}
