package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/akkad/internal/dictionary"
	"github.com/ppiankov/akkad/internal/server"
)

var noWatch bool

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conjugator as a JSON HTTP API",
	Long: `Serve starts the REST API:
  GET /api/conjugate?verb=<verb>   paradigm and verbal adjective
  GET /api/lookup?verb=<verb>      raw dictionary entry
  GET /api/health                  liveness

Requests are rate limited per client address. With the files backend the
dictionary directory is watched and edited letter files are reloaded.

Example:
  akkad serve
  akkad serve --addr 127.0.0.1:9000
  AKKAD_SERVER_REQUESTS_PER_SECOND=5 akkad serve --backend sqlite`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default: server.addr)")
	serveCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload letter files when they change")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, b, err := newPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = b.close() }()

	if b.cache != nil && !noWatch {
		w, err := dictionary.NewWatcher(cfg.Dictionary.Dir, b.cache, logger)
		if err != nil {
			logger.Warn("dictionary watch disabled", zap.Error(err))
		} else {
			go func() { _ = w.Run(ctx) }()
		}
	}

	srv := server.New(p, server.Options{
		Addr:              cfg.Server.Addr,
		RequestsPerSecond: cfg.Server.RequestsPerSecond,
		Burst:             cfg.Server.Burst,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		TrustedClients:    cfg.Server.TrustedClients,
		Version:           Version,
		Logger:            logger,
	})

	fmt.Fprintf(cmd.ErrOrStderr(), "akkad %s listening on %s (dictionary: %s)\n", Version, cfg.Server.Addr, dictionaryLabel())
	if err := srv.ListenAndServe(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
