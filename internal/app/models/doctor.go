package models

import (
	"mediportal-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor is a prescribing physician directory entry. Documents are provisioned
// out-of-band; the API only reads this collection.
type Doctor struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	CRM               string             `bson:"crm,omitempty"`
	PhotoURL          string             `bson:"photo_url,omitempty"`
	Specialties       []string           `bson:"specialties,omitempty"`
	Pathologies       []string           `bson:"pathologies,omitempty"`
	ConsultationTypes []string           `bson:"consultation_types,omitempty"`
	PriceFrom         *float64           `bson:"price_from,omitempty"`
	States            []string           `bson:"states,omitempty"`
	Cities            []string           `bson:"cities,omitempty"`
	ClinicName        string             `bson:"clinic_name,omitempty"`
	Languages         []string           `bson:"languages,omitempty"`
	Education         string             `bson:"education,omitempty"`
	Bio               string             `bson:"bio,omitempty"`
	WhatsApp          string             `bson:"whatsapp,omitempty"`
	Email             string             `bson:"email,omitempty"`
}

func (d Doctor) ConvertIntoResponse() responses.Doctor {
	return responses.Doctor{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		CRM:               d.CRM,
		PhotoURL:          d.PhotoURL,
		Specialties:       d.Specialties,
		Pathologies:       d.Pathologies,
		ConsultationTypes: d.ConsultationTypes,
		PriceFrom:         d.PriceFrom,
		States:            d.States,
		Cities:            d.Cities,
		ClinicName:        d.ClinicName,
		Languages:         d.Languages,
		Education:         d.Education,
		Bio:               d.Bio,
		WhatsApp:          d.WhatsApp,
		Email:             d.Email,
	}
}
