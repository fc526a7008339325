package http

import (
	"net/http"

	"pet-census-api/internal/delivery/http/handler"
	"pet-census-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	ownerHandler        *handler.OwnerHandler
	profileHandler      *handler.ProfileHandler
	petHandler          *handler.PetHandler
	consultationHandler *handler.ConsultationHandler
	userHandler         *handler.UserHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	ownerHandler *handler.OwnerHandler,
	profileHandler *handler.ProfileHandler,
	petHandler *handler.PetHandler,
	consultationHandler *handler.ConsultationHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		ownerHandler:        ownerHandler,
		profileHandler:      profileHandler,
		petHandler:          petHandler,
		consultationHandler: consultationHandler,
		userHandler:         userHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Authenticated routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/owner", r.ownerHandler.GetCurrentOwner).Methods(http.MethodGet)
	protected.HandleFunc("/veterinarians", r.ownerHandler.ListVeterinarians).Methods(http.MethodGet)

	// Profile
	protected.HandleFunc("/profile", r.profileHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profile", r.profileHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/profile/disable", r.profileHandler.DisableAccount).Methods(http.MethodPost)

	// Pets. The report route is registered before the {id} routes so
	// "vaccination-report" never matches as an ID.
	protected.HandleFunc("/pets/vaccination-report", r.petHandler.VaccinationReport).Methods(http.MethodGet)
	protected.HandleFunc("/pets", r.petHandler.ListPets).Methods(http.MethodGet)
	protected.HandleFunc("/pets", r.petHandler.CreatePet).Methods(http.MethodPost)
	protected.HandleFunc("/pets/{id}", r.petHandler.GetPet).Methods(http.MethodGet)
	protected.HandleFunc("/pets/{id}", r.petHandler.UpdatePet).Methods(http.MethodPut)
	protected.HandleFunc("/pets/{id}", r.petHandler.DisablePet).Methods(http.MethodDelete)

	// Medical consultations
	protected.HandleFunc("/medical-consultations", r.consultationHandler.ListConsultations).Methods(http.MethodGet)
	protected.HandleFunc("/medical-consultations", r.consultationHandler.CreateConsultation).Methods(http.MethodPost)
	protected.HandleFunc("/medical-consultations/{id}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	protected.HandleFunc("/medical-consultations/{id}/status", r.consultationHandler.UpdateStatus).Methods(http.MethodPatch)

	// Account management (superadmin only)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireSuperadmin)

	admin.HandleFunc("/owners", r.ownerHandler.ListOwners).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.userHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.DisableUser).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
