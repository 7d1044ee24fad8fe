package requests

type SubscribeNewsletter struct {
	Email     string   `json:"email" validate:"required,email"`
	Interests []string `json:"interests,omitempty"`
}
