package models

type NewsletterSubscriber struct {
	Email     string   `bson:"email"`
	Interests []string `bson:"interests,omitempty"`
}
