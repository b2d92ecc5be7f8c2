// Package cli wires the carrierlock commands into a Cobra application
package cli

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/carrierlock/internal/version"
	"github.com/arthur-debert/carrierlock/pkg/cobrax/topics"
	"github.com/arthur-debert/carrierlock/pkg/config"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/logging"
	"github.com/arthur-debert/carrierlock/pkg/rulesfile"
	"github.com/arthur-debert/carrierlock/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// app is the state shared by the commands of one invocation
type app struct {
	verbosity  int
	configPath string
	format     string
	noValidate bool

	cfg           *config.Config
	outputFormat  ui.Format
	renderer      ui.Renderer
	topicRenderer *topics.GlamourRenderer
	topics        *topics.TopicManager
}

// loader returns the rules file loader configured for this invocation
func (a *app) loader() *rulesfile.Loader {
	return &rulesfile.Loader{Validate: a.cfg.Rules.Validate}
}

// setup loads the configuration and prepares logging and rendering
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLogger(a.verbosity, false)

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("format") {
		overrides["output.format"] = a.format
	}
	if a.noValidate {
		overrides["rules.validate"] = false
	}

	cfg, err := config.Load(a.configPath, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Log.File {
		logging.SetupLogger(a.verbosity, true)
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format")
	}
	format = format.Resolve(cmd.OutOrStdout())
	a.outputFormat = format
	a.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	a.topicRenderer.Width = cfg.Output.Width
	if format == ui.FormatText || format == ui.FormatJSON {
		a.topicRenderer.Style = "notty"
	}

	log.Debug().Str("command", cmd.CommandPath()).Str("format", format.String()).Msg("Command started")
	return nil
}

func outputFormatCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(ui.Formats))
	for _, f := range ui.Formats {
		names = append(names, f.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *app) {
	initTemplateFormatting()
	a := &app{topicRenderer: topics.NewGlamourRenderer(0)}

	rootCmd := &cobra.Command{
		Use:     "carrierlock",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			logging.LogCommand(cmd.CommandPath(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and report incorrect usage
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&a.noValidate, "no-validate", false, MsgFlagNoValidate)
	_ = rootCmd.RegisterFlagCompletionFunc("format", outputFormatCompletion)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: MsgGroupCore})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newDisconnectCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newTopicsCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		a.topics, err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Extensions: []string{".md"},
			Renderer:   a.topicRenderer,
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd, a
}
