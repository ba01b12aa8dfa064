package main

import (
	"fmt"
	"os"
	"time"

	"github.com/matin/garth-mcp-server/pkg/garth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	var (
		domain    string
		timeout   time.Duration
		sentryDSN string
		debug     bool
	)

	rootCmd := &cobra.Command{
		Use:          "garth-mcp-server",
		Short:        "MCP server exposing Garmin Connect health and fitness data",
		Long:         "An MCP server that exposes Garmin Connect health and fitness data\nas tools over stdio. Authentication uses a serialized session token\nfrom the GARTH_TOKEN environment variable.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the MCP protocol, so all logging goes to stderr
			logger := logrus.New()
			logger.SetOutput(os.Stderr)
			if debug {
				logger.SetLevel(logrus.DebugLevel)
			}

			opts := &garth.ClientOptions{
				Domain:    domain,
				Timeout:   timeout,
				SentryDSN: sentryDSN,
			}
			if debug {
				opts.Logger = &logrusAdapter{logger: logger}
			}

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "garth",
				Title:   "Garth - Garmin Connect",
				Version: version,
			}, nil)

			registerTools(server, newGarthTools(opts))

			logger.WithField("version", version).Info("starting MCP server on stdio")
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	rootCmd.Flags().StringVar(&domain, "domain", "", "Garmin domain suffix (garmin.com or garmin.cn); defaults to the token's domain")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout")
	rootCmd.Flags().StringVar(&sentryDSN, "sentry-dsn", os.Getenv("SENTRY_DSN"), "Sentry DSN for error reporting")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logrusAdapter bridges logrus to the client's Logger interface.
type logrusAdapter struct {
	logger *logrus.Logger
}

func (l *logrusAdapter) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l *logrusAdapter) Info(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(fields(keysAndValues)).Info(msg)
}

func (l *logrusAdapter) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(fields(keysAndValues)).Warn(msg)
}

func (l *logrusAdapter) Error(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(fields(keysAndValues)).Error(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		f[key] = keysAndValues[i+1]
	}
	return f
}
