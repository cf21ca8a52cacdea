package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-aspectplus/pkg/editor"
	"github.com/goliatone/go-aspectplus/pkg/presets"
	"github.com/goliatone/go-aspectplus/pkg/settings"
)

func newBoundsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Print the dimension bounds read from the UI configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeFormatted(cmd.OutOrStdout(), format, a.reader().ReadBounds())
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format (json, yaml)")
	return cmd
}

func newCleanupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove stale synchronised fields from the persisted settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removed, err := settings.CleanupStaleFields(a.fs, a.configPath, settings.HiddenKeys...)
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s from %s\n", strings.Join(settings.HiddenKeys, ", "), a.configPath)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s already clean\n", a.configPath)
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var (
		format     string
		showHidden bool
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register every option and print the resulting settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := a.register()
			if err != nil {
				return err
			}
			options := host.Options()
			if !showHidden {
				visible := options[:0]
				for _, opt := range options {
					if !opt.Spec.Hidden {
						visible = append(visible, opt)
					}
				}
				options = visible
			}
			return writeFormatted(cmd.OutOrStdout(), format, options)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format (json, yaml)")
	cmd.Flags().BoolVar(&showHidden, "hidden", false, "include hidden sync fields")
	return cmd
}

func newPresetsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Parse the current dimension presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := a.register()
			if err != nil {
				return err
			}
			text, _ := host.Get(settings.KeyPresets)
			autoLabel, _ := host.Get(settings.KeyPresetsAutoLabel)
			s, _ := text.(string)
			label, _ := autoLabel.(bool)
			return writeFormatted(cmd.OutOrStdout(), format, presets.Parse(s, label))
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (json, yaml)")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Interactively edit the settings and save them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := a.register()
			if err != nil {
				return err
			}
			ed := editor.New(editor.WithValidator(settings.KeyAspectRatios, validateRatioList))
			changed, err := ed.Edit(cmd.Context(), host, host.Options())
			if err != nil {
				return err
			}
			if len(changed) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no changes")
				return nil
			}
			if err := settings.UpdateValues(a.fs, a.configPath, changed); err != nil {
				return err
			}
			a.log.Info("settings saved", "path", a.configPath, "changed", len(changed))
			return nil
		},
	}
}

func validateRatioList(raw string) error {
	entries := presets.ParseRatioList(raw)
	if len(entries) == 0 {
		return fmt.Errorf("at least one ratio is required")
	}
	for _, entry := range entries {
		if _, ok := presets.ParseRatio(entry); !ok {
			return fmt.Errorf("%q is not a W:H ratio", entry)
		}
	}
	return nil
}
