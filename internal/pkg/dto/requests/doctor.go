package requests

type ListDoctors struct {
	Specialty        string   `validate:"omitempty"`
	State            string   `validate:"omitempty"`
	City             string   `validate:"omitempty"`
	Pathology        string   `validate:"omitempty"`
	ConsultationType string   `validate:"omitempty"`
	PriceMax         *float64 `validate:"omitempty,gte=0"`
	Limit            int      `validate:"gte=1,lte=100"`
}
