package models

// AppointmentRequest is a pre-scheduling lead submitted by a patient. Write
// only: the API never reads this collection back. DoctorID is a soft
// reference, not validated against the doctor collection.
type AppointmentRequest struct {
	PatientName      string   `bson:"patient_name"`
	Email            string   `bson:"email"`
	Phone            string   `bson:"phone"`
	Pathology        string   `bson:"pathology"`
	ConsultationType string   `bson:"consultation_type,omitempty"`
	PreferredDates   []string `bson:"preferred_dates,omitempty"`
	State            string   `bson:"state,omitempty"`
	City             string   `bson:"city,omitempty"`
	DoctorID         string   `bson:"doctor_id,omitempty"`
	Notes            string   `bson:"notes,omitempty"`
}
