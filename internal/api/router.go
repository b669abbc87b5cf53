package api

import (
	"fmt"
	"net/http"

	"github.com/rohits-web03/medrecords/internal/api/handlers"
	"github.com/rohits-web03/medrecords/internal/api/middleware"
	"github.com/rohits-web03/medrecords/internal/config"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rohits-web03/medrecords/docs"
)

// Routes bundles the handlers the router binds. DBHealth may be nil.
type Routes struct {
	Auth     *handlers.AuthHandler
	Search   *handlers.SearchHandler
	Patients *handlers.PatientHandler
	History  *handlers.HistoryHandler
	Chat     *handlers.ChatHandler
	DBHealth http.Handler
}

func SetupRouter(cfg *config.Config, logger zerolog.Logger, routes Routes) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsOptions())

	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	if routes.DBHealth != nil {
		mainMux.Handle("GET /health/db", routes.DBHealth)
	}

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("GET /api/home", handlers.Home)
	mainMux.HandleFunc("POST /api/home", handlers.EchoPatientName)
	mainMux.HandleFunc("GET /api/names", handlers.Names)

	mainMux.HandleFunc("POST /api/signup", routes.Auth.Signup)
	mainMux.HandleFunc("POST /api/login", routes.Auth.Login)

	mainMux.HandleFunc("POST /api/chat", routes.Chat.Chat)
	mainMux.HandleFunc("POST /api/search", routes.Search.Search)

	mainMux.HandleFunc("POST /api/patient-details", routes.Patients.Details)
	mainMux.HandleFunc("POST /api/patientData", routes.Patients.Data)
	mainMux.HandleFunc("POST /api/addPatientData", routes.Patients.Data)

	mainMux.HandleFunc("POST /api/patientHistory", routes.History.List)
	mainMux.HandleFunc("POST /api/savePatientHistory", routes.History.Save)

	logger.Debug().Msg("router initialized")

	handler := c.Handler(mainMux)
	handler = middleware.BodyLimit(cfg.MaxBodyBytes)(handler)
	handler = middleware.Recovery(handler)
	handler = middleware.Logger(handler)
	handler = middleware.RequestID(logger)(handler)
	return handler
}
