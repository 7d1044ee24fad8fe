package constvars

// Collection names follow the storage convention: the lowercased entity name.
const (
	MongoCollectionDoctors               = "doctor"
	MongoCollectionArticles              = "article"
	MongoCollectionAppointmentRequests   = "appointmentrequest"
	MongoCollectionNewsletterSubscribers = "newslettersubscriber"
)
