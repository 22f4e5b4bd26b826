package routes

import (
	"github.com/darshan1301/psfa-landing-page-sub001/handlers"
	appMiddleware "github.com/darshan1301/psfa-landing-page-sub001/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Auth           *handlers.AuthHandler
	Sport          *handlers.SportHandler
	Testimonial    *handlers.TestimonialHandler
	TeamMember     *handlers.TeamMemberHandler
	Milestone      *handlers.MilestoneHandler
	Infrastructure *handlers.InfrastructureHandler
	Job            *handlers.JobHandler
	Enquiry        *handlers.EnquiryHandler
	Subscriber     *handlers.SubscriberHandler
	Upload         *handlers.UploadHandler
	Events         *handlers.EventsHandler
}

func SetupRoutes(router *chi.Mux, gate *appMiddleware.PanelGate, h Handlers) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Гейт смотрит на каждый запрос: вне /panel пропускает без инспекции.
	router.Use(gate.Gate)

	// Публичная часть сайта.
	router.Route("/api", func(r chi.Router) {
		r.Get("/sports", h.Sport.GetAllSports)
		r.Get("/testimonials", h.Testimonial.GetAllTestimonials)
		r.Get("/team-members", h.TeamMember.GetAllTeamMembers)
		r.Get("/milestones", h.Milestone.GetAllMilestones)
		r.Get("/infrastructure", h.Infrastructure.GetAllInfrastructure)
		r.Get("/jobs", h.Job.GetAllPositions)

		r.Post("/jobs/apply", h.Job.Apply)
		r.Post("/enquiries", h.Enquiry.CreateEnquiry)
		r.Post("/subscribers", h.Subscriber.Subscribe)
	})

	// Панель администратора. Точки входа auth в списке открытых путей гейта,
	// всё остальное требует валидной сессии.
	router.Route("/panel/api", func(r chi.Router) {
		r.Post("/auth/signup", h.Auth.Signup)
		r.Post("/auth/login", h.Auth.Login)
		r.Post("/auth/logout", h.Auth.Logout)

		r.Route("/sports", func(r chi.Router) {
			r.Post("/", h.Sport.CreateSport)
			r.Put("/{sportID}", h.Sport.UpdateSport)
			r.Patch("/{sportID}/active", h.Sport.SetSportActive)
			r.Delete("/{sportID}", h.Sport.DeleteSport)
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Post("/", h.Testimonial.CreateTestimonial)
			r.Put("/{testimonialID}", h.Testimonial.UpdateTestimonial)
			r.Delete("/{testimonialID}", h.Testimonial.DeleteTestimonial)
		})

		r.Route("/team-members", func(r chi.Router) {
			r.Post("/", h.TeamMember.CreateTeamMember)
			r.Put("/{memberID}", h.TeamMember.UpdateTeamMember)
			r.Delete("/{memberID}", h.TeamMember.DeleteTeamMember)
		})

		r.Route("/milestones", func(r chi.Router) {
			r.Post("/", h.Milestone.CreateMilestone)
			r.Put("/{milestoneID}", h.Milestone.UpdateMilestone)
			r.Delete("/{milestoneID}", h.Milestone.DeleteMilestone)
		})

		r.Route("/infrastructure", func(r chi.Router) {
			r.Post("/", h.Infrastructure.CreateInfrastructure)
			r.Put("/{infraID}", h.Infrastructure.UpdateInfrastructure)
			r.Delete("/{infraID}", h.Infrastructure.DeleteInfrastructure)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Post("/", h.Job.CreatePosition)
			r.Put("/{positionID}", h.Job.UpdatePosition)
			r.Delete("/{positionID}", h.Job.DeletePosition)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Get("/", h.Job.GetAllApplications)
			r.Patch("/{applicationID}/status", h.Job.UpdateApplicationStatus)
		})

		r.Route("/enquiries", func(r chi.Router) {
			r.Get("/", h.Enquiry.GetAllEnquiries)
			r.Patch("/{enquiryID}/status", h.Enquiry.UpdateEnquiryStatus)
			r.Delete("/{enquiryID}", h.Enquiry.DeleteEnquiry)
		})

		r.Route("/subscribers", func(r chi.Router) {
			r.Get("/", h.Subscriber.GetAllSubscribers)
			r.Delete("/{subscriberID}", h.Subscriber.DeleteSubscriber)
		})

		r.Post("/uploads", h.Upload.Upload)
		r.Get("/events", h.Events.ServeWs)
	})
}
