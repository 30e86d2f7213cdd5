package liblift

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/liblift/pkg/bundle"
	"github.com/arthur-debert/liblift/pkg/config"
	"github.com/arthur-debert/liblift/pkg/embedder"
	"github.com/arthur-debert/liblift/pkg/filesystem"
	"github.com/arthur-debert/liblift/pkg/macho"
	"github.com/arthur-debert/liblift/pkg/manifest"
	"github.com/arthur-debert/liblift/pkg/style"
)

func newEmbedCmd(cfgFile *string) *cobra.Command {
	var (
		prefix string
		tag    string
		extras []string
	)

	cmd := &cobra.Command{
		Use:     "embed <executable>",
		Short:   MsgEmbedShort,
		Long:    MsgEmbedLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile, prefix, tag, extras)
			if err != nil {
				return err
			}

			result, layout, err := runEmbed(cfg, args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), style.RenderEmbedReport(result, layout))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", MsgFlagPrefix)
	cmd.Flags().StringVar(&tag, "tag", "", MsgFlagTag)
	cmd.Flags().StringArrayVar(&extras, "extra", nil, MsgFlagExtra)

	return cmd
}

// loadConfig loads the layered configuration and applies flag overrides
func loadConfig(cmd *cobra.Command, cfgFile, prefix, tag string, extras []string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("prefix") {
		cfg.SourcePrefix = prefix
	}
	if cmd.Flags().Changed("tag") {
		cfg.PlatformTag = tag
	}
	if cmd.Flags().Changed("extra") {
		cfg.ExtraLibraries = append(cfg.ExtraLibraries, extras...)
	}

	return cfg, nil
}

// runEmbed wires the engine against the real filesystem and platform
// tools, runs it, and records the manifest when anything was embedded
func runEmbed(cfg *config.Config, executable string) (*embedder.Result, bundle.Layout, error) {
	layout, err := bundle.NewLayout(executable, cfg.PlatformTag)
	if err != nil {
		return nil, bundle.Layout{}, err
	}

	fsys := filesystem.NewOS()
	e, err := embedder.New(embedder.Options{
		FS:           fsys,
		Tool:         macho.NewCLITool(cfg.Otool, cfg.InstallNameTool),
		Layout:       layout,
		SourcePrefix: cfg.SourcePrefix,
	})
	if err != nil {
		return nil, bundle.Layout{}, err
	}

	result, err := e.Run(cfg.ExtraLibraries)
	if err != nil {
		return nil, bundle.Layout{}, err
	}

	if len(result.Libraries) > 0 {
		if err := manifest.New(layout, cfg.SourcePrefix, result).Write(fsys, layout); err != nil {
			return nil, bundle.Layout{}, err
		}
	}

	return result, layout, nil
}
