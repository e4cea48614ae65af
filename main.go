package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/kakao-token/authenticator"
	"github.com/blogem/kakao-token/controllers"
	"github.com/blogem/kakao-token/database"
	authmiddleware "github.com/blogem/kakao-token/middleware"
	"github.com/blogem/kakao-token/repositories"
	"github.com/blogem/kakao-token/services"
)

func main() {
	var admin adminFlags
	flag.Int64Var(&admin.block, "block", 0, "block the user with this ID and exit")
	flag.Int64Var(&admin.unblock, "unblock", 0, "unblock the user with this ID and exit")
	flag.Parse()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.InitializeDatabase(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos)

	if admin.requested() {
		result, err := runAdmin(ctx, srvs.Login, admin)
		if err != nil {
			log.Printf("Admin command failed: %v", err)
			db.Close()
			os.Exit(1)
		}
		fmt.Println(result)
		return
	}

	strategy, err := newStrategy(ctx, cfg, srvs.Login)
	if err != nil {
		log.Fatalf("Failed to initialize Kakao strategy: %v", err)
	}

	recorder := authmiddleware.NewAuditRecorder(repos.Audit, strategy.Name())
	ctrl := controllers.NewControllers(srvs, strategy, recorder)

	r, err := setupRouter(cfg, ctrl, strategy, recorder)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	fmt.Printf("🚀 kakao-token starting on port %s\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s\n", cfg.DBPath)

	<-ctx.Done()
	log.Printf("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	recorder.Wait()
}

// newStrategy builds the token strategy, using the OIDC userinfo endpoint
// when an issuer is configured and the REST profile API otherwise
func newStrategy(ctx context.Context, cfg Config, login services.LoginService) (*authenticator.Strategy, error) {
	httpClient := &http.Client{Timeout: 10 * time.Second}

	opts := authenticator.Options{
		ClientID:          cfg.KakaoClientID,
		CallbackURL:       cfg.KakaoCallbackURL,
		UserAgent:         cfg.KakaoUserAgent,
		UserProfileURL:    cfg.KakaoProfileURL,
		AccessTokenField:  cfg.AccessTokenField,
		RefreshTokenField: cfg.RefreshTokenField,
		HTTPClient:        httpClient,
	}

	if cfg.KakaoOIDCIssuer != "" {
		provider, err := authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Issuer:     cfg.KakaoOIDCIssuer,
			ClientID:   cfg.KakaoClientID,
			Headers:    authenticator.RequestHeaders(nil, cfg.KakaoUserAgent),
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		opts.Fetcher = provider
	}

	return authenticator.NewStrategy(opts, login.Verify)
}

// setupRouter configures all routes
func setupRouter(cfg Config, ctrl *controllers.Controllers, strategy authmiddleware.Authenticator, recorder *authmiddleware.AuditRecorder) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "kakao_token_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     cfg.SessionLifetime,
		Maxlifetime:    cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/auth/kakao/token", ctrl.Auth.TokenLogin)
	r.Post("/auth/kakao/token", ctrl.Auth.TokenLogin)
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "kakao-token"}`)
	})

	// SESSION ROUTES
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		r.Get("/me", ctrl.User.Me)
		r.Get("/me/attempts", ctrl.User.Attempts)
	})

	// TOKEN ROUTES (access token on every request)
	r.Route("/api", func(r chi.Router) {
		r.Use(authmiddleware.RequireToken(strategy, recorder))

		r.Get("/me", ctrl.User.Me)
		r.Get("/me/attempts", ctrl.User.Attempts)
	})

	return r, nil
}
