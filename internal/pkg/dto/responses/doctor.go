package responses

type Doctor struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	CRM               string   `json:"crm,omitempty"`
	PhotoURL          string   `json:"photo_url,omitempty"`
	Specialties       []string `json:"specialties"`
	Pathologies       []string `json:"pathologies"`
	ConsultationTypes []string `json:"consultation_types"`
	PriceFrom         *float64 `json:"price_from,omitempty"`
	States            []string `json:"states"`
	Cities            []string `json:"cities"`
	ClinicName        string   `json:"clinic_name,omitempty"`
	Languages         []string `json:"languages"`
	Education         string   `json:"education,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	WhatsApp          string   `json:"whatsapp,omitempty"`
	Email             string   `json:"email,omitempty"`
}
