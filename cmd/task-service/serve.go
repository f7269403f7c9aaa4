package main

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/KarpovAlexandrGo/taskboard/docs"
	"github.com/KarpovAlexandrGo/taskboard/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long:  `Loads the board from the configured storage and serves the API until a shutdown signal arrives.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		return err
	}

	// Регистрация Swagger
	a.Server.Handler = setupSwagger(a.Server.Handler)

	return a.Run()
}

// setupSwagger настраивает маршруты для Swagger UI.
func setupSwagger(handler http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Mount("/", handler)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
