package server

import (
	"context"
	"distro/internal/config"
	"distro/internal/http/handlers/auth"
	"distro/internal/http/handlers/files"
	"distro/internal/http/handlers/user"
	"distro/internal/http/middleware"
	"distro/internal/models"
	utils "distro/internal/utils/http_errors"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	limits files.Limits,
	log *slog.Logger,
	authService AuthService,
	userService UserService,
	fileService FileService,
) error {
	r := NewRouter(log, limits, authService, userService, fileService)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server", slog.String("error", err.Error()))
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", slog.String("error", err.Error()))
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func NewRouter(log *slog.Logger, limits files.Limits, as AuthService, us UserService, fs FileService) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics)

	setupRoutes(r, log, limits, as, us, fs)

	return r
}

func setupRoutes(r *mux.Router, log *slog.Logger, limits files.Limits, as AuthService, us UserService, fs FileService) {
	// POST login
	r.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		auth.Login(r.Context(), log, w, r, as)
	}).Methods(http.MethodPost)

	// POST password change, plus an ASCII alias for clients that cannot send ñ
	changePassword := func(w http.ResponseWriter, r *http.Request) {
		auth.ChangePassword(r.Context(), log, w, r, as)
	}
	r.HandleFunc("/api/cambiarContraseña", changePassword).Methods(http.MethodPost)
	r.HandleFunc("/api/cambiarContrasena", changePassword).Methods(http.MethodPost)

	// GET users
	r.HandleFunc("/api/usuarios", func(w http.ResponseWriter, r *http.Request) {
		user.Get(r.Context(), log, w, r, us)
	}).Methods(http.MethodGet)

	// POST user
	r.HandleFunc("/api/usuarios", func(w http.ResponseWriter, r *http.Request) {
		user.Post(r.Context(), log, w, r, us)
	}).Methods(http.MethodPost)

	// PUT user by id
	r.HandleFunc("/api/usuarios/{id}", func(w http.ResponseWriter, r *http.Request) {
		user.Put(r.Context(), log, w, r, mux.Vars(r)["id"], us)
	}).Methods(http.MethodPut)

	// DELETE user by id
	r.HandleFunc("/api/usuarios/{id}", func(w http.ResponseWriter, r *http.Request) {
		user.Delete(r.Context(), log, w, r, mux.Vars(r)["id"], us)
	}).Methods(http.MethodDelete)

	// POST file
	r.HandleFunc("/api/archivos/guardar", func(w http.ResponseWriter, r *http.Request) {
		files.Upload(r.Context(), log, w, r, limits, fs)
	}).Methods(http.MethodPost)

	// GET file by name
	r.HandleFunc("/api/archivos/buscar/{nombre}", func(w http.ResponseWriter, r *http.Request) {
		files.Download(r.Context(), log, w, r, mux.Vars(r)["nombre"], fs)
	}).Methods(http.MethodGet, http.MethodHead)

	// DELETE file by name
	r.HandleFunc("/api/archivos/eliminar/{nombre}", func(w http.ResponseWriter, r *http.Request) {
		files.Delete(r.Context(), log, w, r, mux.Vars(r)["nombre"], fs)
	}).Methods(http.MethodDelete)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})

	// Not found
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusNotFound, models.ErrRouteNotFound.Error())
	})
}
