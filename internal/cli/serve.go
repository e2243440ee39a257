package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/odtools/oddraw/pkg/diagram"
	"github.com/odtools/oddraw/pkg/preview"
	"github.com/odtools/oddraw/pkg/scene"
)

const defaultAddr = "127.0.0.1:8484"

// newServeCmd creates the serve command, which serves a scene as a live
// browser preview. The scene file is reloaded on every request, so
// refreshing the browser picks up edits.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [scene]",
		Short: "Serve a scene as a live browser preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

func runServe(ctx context.Context, input, addr string) error {
	logger := loggerFromContext(ctx)

	// Fail fast on an unreadable scene before binding the port.
	if _, err := scene.Load(input); err != nil {
		return err
	}

	srv := preview.NewServer(addr, func() *diagram.Diagram {
		d, err := scene.Load(input)
		if err != nil {
			logger.Errorf("reload %s: %v", input, err)
			return nil
		}
		return d
	})

	printInfo("serving %s", input)
	printNextStep("open", "http://"+addr+"/")

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
