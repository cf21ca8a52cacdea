package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-aspectplus/internal/logger"
	"github.com/goliatone/go-aspectplus/pkg/settings"
	"github.com/goliatone/go-aspectplus/pkg/uiconfig"
)

type app struct {
	fs         afero.Fs
	uiPath     string
	configPath string
	logLevel   string
	logJSON    bool
	log        logger.Logger
}

func newRootCmd(fsys afero.Fs) *cobra.Command {
	a := &app{fs: fsys, log: logger.Nop()}

	root := &cobra.Command{
		Use:           "arp-settings",
		Short:         "Inspect and edit the Aspect Ratio+ extension settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logger.NewLogger(&logger.Config{
				Level:      logger.ParseLevel(a.logLevel),
				Output:     cmd.ErrOrStderr(),
				JSON:       a.logJSON,
				TimeFormat: "15:04:05",
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.uiPath, "ui-config", uiconfig.DefaultPath, "UI configuration file holding slider limits")
	flags.StringVar(&a.configPath, "config", settings.DefaultConfigPath, "persisted settings file")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(
		newBoundsCmd(a),
		newCleanupCmd(a),
		newRegisterCmd(a),
		newPresetsCmd(a),
		newEditCmd(a),
	)
	return root
}

func (a *app) reader() *uiconfig.Reader {
	return uiconfig.NewReader(
		uiconfig.WithFs(a.fs),
		uiconfig.WithPath(a.uiPath),
		uiconfig.WithLogger(a.log),
	)
}

// register runs the registrar against a registry seeded with the persisted
// values, the way the host does on startup.
func (a *app) register() (*settings.MemoryRegistry, error) {
	values, err := settings.LoadValues(a.fs, a.configPath)
	if err != nil {
		a.log.Warn("persisted settings unreadable, starting empty", "path", a.configPath, "error", err)
		values = nil
	}
	registrar := settings.NewRegistrar(
		settings.WithFs(a.fs),
		settings.WithConfigPath(a.configPath),
		settings.WithBoundsReader(a.reader()),
		settings.WithLogger(a.log),
	)
	host := settings.NewMemoryRegistry(settings.WithValues(values))
	if err := registrar.Register(host); err != nil {
		return nil, err
	}
	return host, nil
}

func writeFormatted(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
