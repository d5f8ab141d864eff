package handlers

import (
	"net/http"

	"adboard/internal/config"
	"adboard/internal/middleware"
	"adboard/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	AdService      service.AdService
	CommentService service.CommentService
	TablesService  service.TablesService
	Cfg            *config.Config
	Validate       *validator.Validate
	Log            *zap.Logger
}

func NewHandlers(service *service.Service, config *config.Config, log *zap.Logger) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		UserService:    service.User,
		AdService:      service.Ad,
		CommentService: service.Comment,
		TablesService:  service.Tables,
		Cfg:            config,
		Validate:       NewValidator(),
		Log:            log,
	}
}

// Routes expects the principal, if any, to be attached by
// middleware.Authenticate further out.
func (h *Handlers) Routes() *mux.Router {
	r := mux.NewRouter()
	protected := func(f http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(f)
	}

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)

	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)

	r.Handle("/users/me", protected(h.GetCurrentUser)).Methods(http.MethodGet)
	r.Handle("/users/me", protected(h.UpdateCurrentUser)).Methods(http.MethodPatch)
	r.Handle("/users/me/image", protected(h.UpdateUserImage)).Methods(http.MethodPatch)
	r.Handle("/users/set_password", protected(h.SetPassword)).Methods(http.MethodPost)
	r.HandleFunc("/users/{id:[0-9]+}/image", h.GetUserImage).Methods(http.MethodGet)

	r.HandleFunc("/ads", h.GetAds).Methods(http.MethodGet)
	r.Handle("/ads", protected(h.CreateAd)).Methods(http.MethodPost)
	r.Handle("/ads/me", protected(h.GetMyAds)).Methods(http.MethodGet)
	r.Handle("/ads/{id:[0-9]+}", protected(h.GetAd)).Methods(http.MethodGet)
	r.Handle("/ads/{id:[0-9]+}", protected(h.UpdateAd)).Methods(http.MethodPatch)
	r.Handle("/ads/{id:[0-9]+}", protected(h.DeleteAd)).Methods(http.MethodDelete)
	r.HandleFunc("/ads/{id:[0-9]+}/image", h.GetAdImage).Methods(http.MethodGet)
	r.Handle("/ads/{id:[0-9]+}/image", protected(h.UpdateAdImage)).Methods(http.MethodPatch)

	r.Handle("/ads/{id:[0-9]+}/comments", protected(h.GetComments)).Methods(http.MethodGet)
	r.Handle("/ads/{id:[0-9]+}/comments", protected(h.CreateComment)).Methods(http.MethodPost)
	r.Handle("/ads/{adId:[0-9]+}/comments/{commentId:[0-9]+}", protected(h.UpdateComment)).Methods(http.MethodPatch)
	r.Handle("/ads/{adId:[0-9]+}/comments/{commentId:[0-9]+}", protected(h.DeleteComment)).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}
