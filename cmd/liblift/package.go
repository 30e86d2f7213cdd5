package liblift

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/liblift/pkg/archive"
	"github.com/arthur-debert/liblift/pkg/config"
)

func newPackageCmd(cfgFile *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "package <bundle-dir>",
		Short:   MsgPackageShort,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}

			out := cfg.Archive.Output
			if cmd.Flags().Changed("output") {
				out = output
			}
			if out == "" {
				out = archive.DefaultOutputPath(args[0])
			}

			if err := archive.Create(args[0], out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Packaged %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)

	return cmd
}

func newConfigCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}

			data, err := cfg.MarshalTOML()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
