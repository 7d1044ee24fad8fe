package requests

type CreateAppointment struct {
	PatientName      string   `json:"patient_name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Phone            string   `json:"phone" validate:"required"`
	Pathology        string   `json:"pathology" validate:"required"`
	ConsultationType string   `json:"consultation_type,omitempty"`
	PreferredDates   []string `json:"preferred_dates,omitempty"`
	State            string   `json:"state,omitempty"`
	City             string   `json:"city,omitempty"`
	DoctorID         string   `json:"doctor_id,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}
