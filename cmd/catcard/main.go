package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/catcard"
	"github.com/bft-labs/catcard/internal/cliconfig"
)

const longHelp = `Fetch two captioned cat images and put them side by side in one card.

The left image carries the greeting, the right one carries who. Each image is
width x height pixels, so the card is twice as wide as a single image.

Settings are read from the config file, then CATCARD_* environment variables,
then flags; explicitly set flags always win.`

var exampleUsage = strings.TrimSpace(`
  catcard
  catcard --greeting Hi --who Bob --width 200 --height 300 --color Blue --size 50
  catcard --config $HOME/.catcard/config.yaml --output cards/today.png
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "catcard",
		Short:         "Compose a greeting card from two captioned cat images",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := resolveConfig(&cfg, cfgPath, changed); err != nil {
				boot, _ := cliconfig.NewLogger(stderr, "info", "")
				boot.Error().Err(err).Msg("invalid configuration")
				return err
			}

			log, closer := cliconfig.NewLogger(stderr, cfg.LogLevel, cfg.LogFile)
			defer closer.Close()

			runID := xid.New().String()
			log = log.With().Str("run_id", runID).Logger()
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := catcard.Generate(ctx, cfg,
				catcard.WithLogger(log),
				catcard.WithRunID(runID))
			if err != nil {
				log.Error().Err(err).Msg("card generation failed")
				return err
			}

			log.Info().
				Str("path", res.OutputPath).
				Int("bytes", res.Bytes).
				Dur("took", res.Duration).
				Msg("card saved")
			fmt.Fprintf(stdout, "The file was saved to %s\n", res.OutputPath)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetContext(context.Background())

	defaults := cliconfig.DefaultConfig()
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file, .toml or .yaml (default: $HOME/.catcard/config.toml)")

	root.Flags().StringVar(&cfg.Greeting, "greeting", defaults.Greeting, "caption of the left image")
	root.Flags().StringVar(&cfg.Who, "who", defaults.Who, "caption of the right image")
	root.Flags().IntVar(&cfg.Width, "width", defaults.Width, "width of each image in pixels")
	root.Flags().IntVar(&cfg.Height, "height", defaults.Height, "height of each image in pixels")
	root.Flags().StringVar(&cfg.Color, "color", defaults.Color, "caption color requested from the image service")
	root.Flags().IntVar(&cfg.Size, "size", defaults.Size, "caption size requested from the image service")

	root.Flags().StringVarP(&cfg.Output, "output", "o", defaults.Output, "output file; .jpg/.jpeg or .png")
	root.Flags().IntVar(&cfg.Quality, "quality", defaults.Quality, "JPEG quality (1-100)")
	root.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", defaults.HTTPTimeout, "HTTP timeout per image (0 disables)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	root.Flags().StringVar(&cfg.LogFile, "log-file", "", "also write JSON logs to this rotating file")

	root.Flags().StringVar(&cfg.ServiceURL, "service-url", defaults.ServiceURL, "image service base URL")
	_ = root.Flags().MarkHidden("service-url")

	return root
}

// resolveConfig layers the config file and environment under explicitly set
// flags, then validates the result.
func resolveConfig(cfg *cliconfig.Config, cfgPath string, changed map[string]bool) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	if cfgPath != "" || (cfgFile != "" && cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}
