// Package cmd provides the command-line surface of the plugin maker.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofa-framework/plugin-maker/internal/config"
	oerrors "github.com/sofa-framework/plugin-maker/internal/errors"
	"github.com/sofa-framework/plugin-maker/internal/output"
	"github.com/sofa-framework/plugin-maker/internal/scaffold"
	"github.com/sofa-framework/plugin-maker/internal/templates"
	"github.com/sofa-framework/plugin-maker/internal/version"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool
	dryRunFlag     bool
	treeFlag       bool
	versionFlag    bool
	outputFlag     string

	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command of the plugin maker.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sofa-plugin-maker <plugin_name> <path>",
		Short: "Create a SOFA plugin template",
		Long: `Create a SOFA plugin template with the necessary files and folder structure.

Arguments:
  <plugin_name>  Name of the plugin (alphanumeric, hyphens, underscores only)
  <path>         Path where the plugin folder will be created

A plugin name starting with "-" must follow "--" so it is not read as a flag:
  sofa-plugin-maker -- -lead ./plugins

Examples:
  # Create ./plugins/MyPlugin
  sofa-plugin-maker MyPlugin ./plugins

  # Show what would be created without writing anything
  sofa-plugin-maker MyPlugin ./plugins --dry-run

  # Same, as JSON
  sofa-plugin-maker MyPlugin ./plugins --dry-run -o json

  # Print a tree of the created plugin
  sofa-plugin-maker MyPlugin ~/dev --tree`,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runRoot,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := rootCmd.Flags()
	flags.StringVar(&configFlag, "config", "", "Path to config file (env: SOFA_PLUGIN_MAKER_CONFIG)")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	flags.BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	flags.BoolVar(&dryRunFlag, "dry-run", false, "Validate and list what would be created without writing anything")
	flags.BoolVar(&treeFlag, "tree", false, "Print a tree summary of the created plugin")
	flags.StringVarP(&outputFlag, "output", "o", "text",
		fmt.Sprintf("Format of the --dry-run listing (%s)", strings.Join(output.ValidFormats(), ", ")))
	flags.BoolVar(&versionFlag, "version", false, "Show version information and the detected cmake")

	return rootCmd
}

// validateArgs requires exactly a plugin name and a path, unless --version is set.
func validateArgs(cmd *cobra.Command, args []string) error {
	if versionFlag {
		return nil
	}
	if len(args) != 2 {
		return oerrors.NewArgumentCountError(len(args))
	}
	return nil
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	opts := config.ResolveOptions{
		ConfigFlag: configFlag,
		Timestamps: config.BoolFlag{Value: timestampsFlag, Changed: cmd.Flags().Changed("timestamps")},
		Tree:       config.BoolFlag{Value: treeFlag, Changed: cmd.Flags().Changed("tree")},
	}

	// Only an explicit --config file can fail the run.
	resolved, err := config.ResolveAll(opts)
	if err != nil {
		if cmd.Flags().Changed("config") {
			return fmt.Errorf("loading configuration: %w", err)
		}
		output.Warn("ignoring configuration", "error", err)
		resolved = config.ResolveDefaults(opts)
	}
	resolvedConfig = resolved

	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: output.BoolPtr(resolved.Timestamps.Value),
	})

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", resolved.ConfigPath.Value,
			"configSource", resolved.ConfigPath.Source,
			"timestamps", resolved.Timestamps.Value,
			"tree", resolved.Tree.Value,
			"treeSource", resolved.Tree.Source,
			"dryRun", dryRunFlag,
		)
		checkCMake()
	}

	return nil
}

// checkCMake reports whether the installed cmake can build the generated plugin.
func checkCMake() {
	info := version.DetectCMakeBinary()
	if !info.Found {
		output.Debug("cmake not found", "message", info.Message)
		return
	}
	output.Debug("cmake detected", "path", info.Path, "version", info.Version)
	if !info.Compatible {
		output.Warn("installed cmake cannot build the generated plugin",
			"version", info.Version,
			"required", ">= "+version.MinCMakeVersion,
			"message", info.Message)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if versionFlag {
		output.Println(version.FullVersionString(version.Get(), version.DetectCMakeBinary()))
		return nil
	}

	format, err := output.ParseOutputFormat(outputFlag)
	if err != nil {
		return &usageError{err: err}
	}

	pluginName, destPath := args[0], args[1]

	s := scaffold.New(scaffold.NewConsoleReporter())
	res, err := s.Plan(pluginName, destPath)
	if err != nil {
		return err
	}

	// Structured listings stay machine readable.
	if !dryRunFlag || format == output.FormatText || format == output.FormatTable {
		output.Println(fmt.Sprintf("Plugin name '%s' is valid", pluginName))
		output.Println(fmt.Sprintf("Path '%s' is valid", destPath))
	}

	if dryRunFlag {
		return printPlan(res, format)
	}

	if err := s.Emit(res); err != nil {
		return err
	}

	if resolvedConfig != nil && resolvedConfig.Tree.Value {
		printSummary(res)
	}
	return nil
}

// printSummary prints a tree of the created plugin with a closing checkmark.
func printSummary(res *scaffold.Result) {
	name := res.Identity.Name

	files := make(map[string]string)
	for _, f := range res.Plan.Files() {
		files[f] = templates.Describe(f, name)
	}

	output.Println("")
	output.Print(output.RenderFileTree(name, files, res.Plan.Dirs()))
	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("Plugin %s created in %s",
		output.FormatNoun(name), output.FormatNoun(res.DestPath))))
}
