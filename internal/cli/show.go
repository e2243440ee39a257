package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/odtools/oddraw/pkg/config"
)

// newShowCmd creates the show command, which renders a scene to a
// temporary file and opens it in the platform viewer configured for the
// backend.
func newShowCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "show [scene]",
		Short: "Render a scene and open it in the configured viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0], backend)
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "", "backend: svg, png, drawio (default: from config)")

	return cmd
}

func runShow(ctx context.Context, input, backend string) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	d, err := loadScene(ctx, input, 0, 0)
	if err != nil {
		return err
	}

	if backend == "" {
		backend = cfg.DefaultBackend
	}
	logger.Debugf("Opening with %s viewer %q", backend, cfg.ViewerFor(backend))

	if err := d.Show(backend, cfg); err != nil {
		printError("show failed: %v", err)
		return err
	}
	printSuccess("opened %s in viewer", input)
	return nil
}
