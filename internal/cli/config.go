package cli

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/odtools/oddraw/pkg/config"
)

// newConfigCmd creates the config command, which prints the resolved
// configuration after merging the user's file over platform defaults.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if home, err := os.UserHomeDir(); err == nil {
				printKeyValue("config file", filepath.Join(home, config.FileName))
			}
			printKeyValue("default backend", cfg.DefaultBackend)
			printKeyValue("default width", strconv.Itoa(cfg.DefaultWidth))
			printKeyValue("default height", strconv.Itoa(cfg.DefaultHeight))
			printKeyValue("svg viewer", cfg.SVGViewer)
			printKeyValue("png viewer", cfg.PNGViewer)
			printKeyValue("drawio viewer", cfg.DrawioViewer)
			return nil
		},
	}
}
