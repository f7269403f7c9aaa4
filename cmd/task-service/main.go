package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

// @title           Taskboard API
// @version         1.0
// @description     Personal task board: tasks, projects and filtered views.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

var rootCmd = &cobra.Command{
	Use:           "task-service",
	Short:         "Personal task board service",
	Long:          `Serves the task board over HTTP and manages its storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}
