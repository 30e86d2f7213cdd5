package liblift

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/liblift/pkg/buildrun"
	"github.com/arthur-debert/liblift/pkg/style"
)

func newBundleCmd(cfgFile *string) *cobra.Command {
	var (
		prefix string
		tag    string
		extras []string
	)

	cmd := &cobra.Command{
		Use:     "bundle <executable>",
		Short:   MsgBundleShort,
		Long:    MsgBundleLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile, prefix, tag, extras)
			if err != nil {
				return err
			}

			if err := buildrun.NewRunner().Run(cmd.Context(), cfg.Build.Steps); err != nil {
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
