package http

import (
	"net/http"

	"clinic-booking-api/internal/delivery/http/handler"
	"clinic-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	accountHandler       *handler.AccountHandler
	doctorHandler        *handler.DoctorHandler
	catalogHandler       *handler.CatalogHandler
	patientHandler       *handler.PatientHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	feedbackHandler      *handler.FeedbackHandler
	chatHandler          *handler.ChatHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	loggingMiddleware    *middleware.LoggingMiddleware
	metricsMiddleware    *middleware.MetricsMiddleware
	rateLimiter          *middleware.RateLimiter
}

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Auth          *handler.AuthHandler
	Account       *handler.AccountHandler
	Doctor        *handler.DoctorHandler
	Catalog       *handler.CatalogHandler
	Patient       *handler.PatientHandler
	Appointment   *handler.AppointmentHandler
	MedicalRecord *handler.MedicalRecordHandler
	Feedback      *handler.FeedbackHandler
	Chat          *handler.ChatHandler
	AuditLog      *handler.AuditLogHandler
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          handlers.Auth,
		accountHandler:       handlers.Account,
		doctorHandler:        handlers.Doctor,
		catalogHandler:       handlers.Catalog,
		patientHandler:       handlers.Patient,
		appointmentHandler:   handlers.Appointment,
		medicalRecordHandler: handlers.MedicalRecord,
		feedbackHandler:      handlers.Feedback,
		chatHandler:          handlers.Chat,
		auditLogHandler:      handlers.AuditLog,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		loggingMiddleware:    loggingMiddleware,
		metricsMiddleware:    metricsMiddleware,
		rateLimiter:          rateLimiter,
	}
}

// Setup registers every route and returns the root handler.
func (r *Router) Setup() http.Handler {
	r.router.Use(middleware.RequestID)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Recover)
	r.router.Use(r.metricsMiddleware.Handle)

	// Health check and metrics
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	// Auth routes (public, throttled)
	auth := r.router.NewRoute().Subrouter()
	auth.Use(r.rateLimiter.Handle)
	auth.HandleFunc("/register/", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login/", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/token/refresh/", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Public routes. Admin-only creates here answer 403 to anonymous callers.
	public := r.router.NewRoute().Subrouter()
	public.Use(r.authMiddleware.OptionalAuthenticate)
	public.HandleFunc("/users/", r.accountHandler.ListAccounts).Methods(http.MethodGet)
	public.HandleFunc("/users/", r.accountHandler.CreateAccount).Methods(http.MethodPost)
	public.HandleFunc("/doctors/", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	public.HandleFunc("/doctor/{id}/", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	public.HandleFunc("/doctor_create/", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	public.HandleFunc("/departments/", r.catalogHandler.ListDepartments).Methods(http.MethodGet)
	public.HandleFunc("/specialties/", r.catalogHandler.ListSpecialties).Methods(http.MethodGet)
	public.HandleFunc("/department_create/", r.catalogHandler.CreateDepartment).Methods(http.MethodPost)
	public.HandleFunc("/specialty_create/", r.catalogHandler.CreateSpecialty).Methods(http.MethodPost)

	// Protected routes
	protected := r.router.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)
	protected.HandleFunc("/logout/", r.authHandler.Logout).Methods(http.MethodPost)

	protected.HandleFunc("/users/{id}/", r.accountHandler.GetAccount).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}/", r.accountHandler.ReplaceAccount).Methods(http.MethodPut)
	protected.HandleFunc("/users/{id}/", r.accountHandler.UpdateAccount).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{id}/", r.accountHandler.DeleteAccount).Methods(http.MethodDelete)

	protected.HandleFunc("/patients/", r.patientHandler.ListPatients).Methods(http.MethodGet)
	protected.HandleFunc("/patient/{id}/", r.patientHandler.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patient_create/", r.patientHandler.CreatePatient).Methods(http.MethodPost)

	protected.HandleFunc("/appointment/", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointment_create/", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointment/{id}/", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	protected.HandleFunc("/medical_records/", r.medicalRecordHandler.ListMedicalRecords).Methods(http.MethodGet)
	protected.HandleFunc("/medical_record_create/", r.medicalRecordHandler.CreateMedicalRecord).Methods(http.MethodPost)
	protected.HandleFunc("/medical_record/{id}/", r.medicalRecordHandler.GetMedicalRecord).Methods(http.MethodGet)
	protected.HandleFunc("/medical_record/{id}/", r.medicalRecordHandler.ReplaceMedicalRecord).Methods(http.MethodPut)
	protected.HandleFunc("/medical_record/{id}/", r.medicalRecordHandler.UpdateMedicalRecord).Methods(http.MethodPatch)
	protected.HandleFunc("/medical_record/{id}/", r.medicalRecordHandler.DeleteMedicalRecord).Methods(http.MethodDelete)

	protected.HandleFunc("/feedbacks/", r.feedbackHandler.ListFeedback).Methods(http.MethodGet)
	protected.HandleFunc("/feedback_create/", r.feedbackHandler.CreateFeedback).Methods(http.MethodPost)
	protected.HandleFunc("/feedback/{id}/", r.feedbackHandler.GetFeedback).Methods(http.MethodGet)
	protected.HandleFunc("/feedback/{id}/", r.feedbackHandler.ReplaceFeedback).Methods(http.MethodPut)
	protected.HandleFunc("/feedback/{id}/", r.feedbackHandler.UpdateFeedback).Methods(http.MethodPatch)
	protected.HandleFunc("/feedback/{id}/", r.feedbackHandler.DeleteFeedback).Methods(http.MethodDelete)

	protected.HandleFunc("/chats/", r.chatHandler.ListChats).Methods(http.MethodGet)
	protected.HandleFunc("/chat_create/", r.chatHandler.CreateChat).Methods(http.MethodPost)
	protected.HandleFunc("/chat/{id}/messages/", r.chatHandler.ListMessages).Methods(http.MethodGet)
	protected.HandleFunc("/chat/{id}/messages/", r.chatHandler.PostMessage).Methods(http.MethodPost)

	// Admin routes
	admin := r.router.PathPrefix("/audit_logs").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/{id}/", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Preflight requests are answered before route matching
	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
