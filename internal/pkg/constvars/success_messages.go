package constvars

const (
	GetArticlesSuccessMessage         = "Successfully retrieved articles"
	GetArticleSuccessMessage          = "Successfully retrieved article"
	GetDoctorsSuccessMessage          = "Successfully retrieved doctors"
	GetSchemaSuccessMessage           = "Successfully retrieved collection schemas"
	CreateAppointmentSuccessMessage   = "Successfully submitted appointment request"
	SubscribeNewsletterSuccessMessage = "Successfully subscribed to the newsletter"
	LivenessMessage                   = "Medical Directory Portal API is running"
	GetDiagnosticsSuccessMessage      = "Successfully retrieved diagnostics"
)
