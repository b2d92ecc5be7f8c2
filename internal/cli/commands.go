package cli

import (
	"fmt"

	"github.com/arthur-debert/carrierlock/internal/version"
	"github.com/arthur-debert/carrierlock/pkg/commands"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/filesystem"
	"github.com/arthur-debert/carrierlock/pkg/rulesfile"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		rulesPath string
		sims      []string
		slotsPath string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:     "check [SIM]...",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rulesPath == "" {
				rulesPath = a.cfg.Rules.Path
			}
			result, err := commands.Check(commands.CheckOptions{
				RulesPath: rulesPath,
				SIMs:      append(sims, args...),
				SlotsPath: slotsPath,
				Strict:    strict,
				Loader:    a.loader(),
			})
			if result != nil {
				if renderErr := a.renderer.RenderResult(result); renderErr != nil {
					return renderErr
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", MsgFlagRules)
	// StringArray keeps the commas inside each value
	cmd.Flags().StringArrayVarP(&sims, "sim", "s", nil, MsgFlagSim)
	cmd.Flags().StringVar(&slotsPath, "sims", "", MsgFlagSims)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

func newRulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		GroupID: "core",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [FILE]",
		Short: MsgRulesShowShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := commands.ShowRules(commands.ShowRulesOptions{
				Path:   a.rulesPathArg(args),
				Loader: a.loader(),
			})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(summary)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [FILE]...",
		Short: MsgRulesValidateShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 && a.cfg.Rules.Path != "" {
				paths = []string{a.cfg.Rules.Path}
			}
			result, err := commands.ValidateRules(commands.ValidateRulesOptions{Paths: paths})
			if err != nil {
				return err
			}
			if err := a.renderer.RenderResult(result); err != nil {
				return err
			}
			if !result.Valid() {
				invalid := 0
				for _, f := range result.Files {
					if !f.Valid {
						invalid++
					}
				}
				return errors.Newf(errors.ErrRulesInvalid, MsgRulesInvalidSummary, invalid, len(result.Files))
			}
			return nil
		},
	})

	var (
		to        string
		output    string
		overwrite bool
	)
	convertCmd := &cobra.Command{
		Use:     "convert [FILE]",
		Short:   MsgRulesConvertShort,
		Example: MsgConvertExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := commands.ConvertRules(commands.ConvertRulesOptions{
				Path:   a.rulesPathArg(args),
				To:     to,
				Loader: a.loader(),
			})
			if err != nil {
				return err
			}
			if output == "" {
				return a.renderer.RenderResult(doc)
			}
			if err := filesystem.Save(filesystem.NewOS(), output, []byte(doc.Content), overwrite); err != nil {
				return err
			}
			return a.renderer.RenderMessage(fmt.Sprintf(MsgConvertWritten, doc.Format, output))
		},
	}
	convertCmd.Flags().StringVarP(&to, "to", "t", "", MsgFlagTo)
	convertCmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	convertCmd.Flags().BoolVar(&overwrite, "force", false, MsgFlagOverwrite)
	_ = convertCmd.MarkFlagRequired("to")
	_ = convertCmd.RegisterFlagCompletionFunc("to", formatCompletion)
	cmd.AddCommand(convertCmd)

	var slots bool
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: MsgRulesSchemaShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := commands.RulesSchema(commands.RulesSchemaOptions{Slots: slots})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(doc)
		},
	}
	schemaCmd.Flags().BoolVar(&slots, "slots", false, MsgFlagSlots)
	cmd.AddCommand(schemaCmd)

	return cmd
}

// rulesPathArg returns the file argument, or the configured rules file
func (a *app) rulesPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.cfg.Rules.Path
}

func formatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(rulesfile.Formats))
	for _, f := range rulesfile.Formats {
		names = append(names, string(f))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newDisconnectCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "disconnect [CODE|NAME]...",
		Short:   MsgDisconnectShort,
		Long:    MsgDisconnectLong,
		Example: MsgDisconnectExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.LookupCauses(commands.LookupCausesOptions{Queries: args, All: all})
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(result)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	var (
		write bool
		force bool
		path  string
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Long:  MsgConfigInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.GenConfig(commands.GenConfigOptions{
				Write: write || path != "",
				Path:  path,
				Force: force,
			})
			if err != nil {
				return err
			}
			if result.FileWritten != "" {
				return a.renderer.RenderMessage(fmt.Sprintf(MsgConfigWritten, result.FileWritten))
			}
			return a.renderer.RenderResult(&display.Document{Format: "toml", Content: result.ConfigContent})
		},
	}
	initCmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	initCmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	initCmd.Flags().StringVar(&path, "path", "", MsgFlagPath)
	cmd.AddCommand(initCmd)

	return cmd
}

func newTopicsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.topics == nil {
				return errors.New(errors.ErrNotFound, "help topics are not available")
			}
			a.topics.WriteTopicList(cmd.OutOrStdout(), cmd.Root().Name())
			return nil
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.RenderMessage(version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
