package transport

import (
	"encoding/json"
	"net/http"

	accountapp "github.com/celebratehq/birthday-api/application/account"
	celebrationapp "github.com/celebratehq/birthday-api/application/celebration"
	"github.com/celebratehq/birthday-api/cmd/config"
	"github.com/celebratehq/birthday-api/constant"
	"github.com/celebratehq/birthday-api/model"
	utilsContext "github.com/celebratehq/birthday-api/utils/context"
	"github.com/celebratehq/birthday-api/utils/errors"
	validatorx "github.com/celebratehq/birthday-api/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AccountApp     accountapp.AccountApp
	CelebrationApp celebrationapp.CelebrationApp
}

func NewTransport(cfg *config.Config, accountApp accountapp.AccountApp, celebrationApp celebrationapp.CelebrationApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		AccountApp:     accountApp,
		CelebrationApp: celebrationApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/app-user", rh.GetAppUser).Methods(http.MethodGet)
	mux.HandleFunc("/app-user", rh.UpdateAppUser).Methods(http.MethodPut)
	mux.HandleFunc("/app-user", rh.DeleteAppUser).Methods(http.MethodDelete)
	mux.HandleFunc("/celebrate-friend", rh.CreateCelebration).Methods(http.MethodPost)

	// Internal routes (service API key, not end-user tokens)
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.InternalAPIKey))
	internal.HandleFunc("/celebration/{id}/ack", rh.AckCelebration).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(accountApp))

	return mux
}

// Register handler
// @Summary Register account
// @Description Register a new app user, optionally uploading a profile picture
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.AccountResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login
// @Description Sign in with email and password, receive a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAppUser handler
// @Summary Get current account
// @Description Return the authenticated account's profile
// @Tags AppUser
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AccountResponse
// @Failure 401 {object} errors.CustomError
// @Router /app-user [get]
func (s *RestHandler) GetAppUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AccountApp.GetProfile(ctx, accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAppUser handler
// @Summary Update current account
// @Description Partially update the authenticated account's profile
// @Tags AppUser
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateAccountRequest true "Update Request"
// @Success 200 {object} model.AccountResponse
// @Failure 401 {object} errors.CustomError
// @Router /app-user [put]
func (s *RestHandler) UpdateAppUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.UpdateProfile(ctx, accountID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteAppUser handler
// @Summary Delete current account
// @Description Delete the authenticated account together with its celebrations and media
// @Tags AppUser
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.CustomError
// @Router /app-user [delete]
func (s *RestHandler) DeleteAppUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	sessionID, _ := utilsContext.GetSessionID(ctx)

	if err := s.AccountApp.DeleteAccount(ctx, accountID, sessionID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"success": true})
}

// CreateCelebration handler
// @Summary Celebrate a friend
// @Description Record a celebration message and its media attachment
// @Tags Celebration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CelebrationRequest true "Celebration Request"
// @Success 200 {object} model.CelebrationResponse
// @Failure 400 {object} errors.CustomError
// @Router /celebrate-friend [post]
func (s *RestHandler) CreateCelebration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accountID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CelebrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CelebrationApp.CreateCelebration(ctx, accountID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AckCelebration marks a celebration processed. Called by the queue
// consumer through the internal API, not by end users.
func (s *RestHandler) AckCelebration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CelebrationApp.AckCelebration(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"success": true})
}
