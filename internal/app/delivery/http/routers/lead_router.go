package routers

import (
	"mediportal-service/internal/app/services/core/leads"

	"github.com/go-chi/chi/v5"
)

func attachLeadRoutes(router chi.Router, leadController *leads.LeadController) {
	router.Post("/appointment", leadController.CreateAppointment)
	router.Post("/newsletter", leadController.SubscribeNewsletter)
}
