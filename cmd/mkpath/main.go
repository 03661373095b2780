package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/mkpath/internal/configuration"
	"github.com/desertwitch/mkpath/internal/createpath"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configPath  string
	dirMode     string
	debug       bool
	showVersion bool
)

//nolint:gochecknoglobals
var rootCmd = &cobra.Command{
	Use:   "mkpath [flags] PATH...",
	Short: "Create output directory paths, including all missing parents",
	Long: `Creates every missing directory along each given path. Paths may be
relative to the working directory, absolute, relative to the home directory
(leading "~") or contain ".." backreferences. Existing directories are left
untouched; a path blocked by a file or ending in a non-writable directory
fails.`,
	Args:          requirePaths,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           rootCmdRun,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "set the location of a dotenv configuration file")
	rootCmd.PersistentFlags().StringVar(&dirMode, "mode", "", "octal permission mode for created directories (overrides configuration)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "show the version and exit")
}

// requirePaths demands at least one path, unless only the version is asked for.
func requirePaths(cmd *cobra.Command, args []string) error {
	if showVersion {
		return nil
	}

	return cobra.MinimumNArgs(1)(cmd, args)
}

func readConfiguration() (*configuration.AppConfiguration, error) {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	var files []string
	if configPath != "" {
		files = append(files, configPath)
	}

	config, err := configHandler.ReadAppConfiguration(files...)
	if err != nil {
		return nil, err
	}

	if dirMode != "" {
		mode, err := configuration.ParseDirMode(dirMode)
		if err != nil {
			return nil, fmt.Errorf("(main) --mode: %w", err)
		}
		config.DirMode = mode
	}

	if debug {
		config.LogLevel = slog.LevelDebug
	}

	return config, nil
}

func rootCmdRun(cmd *cobra.Command, args []string) {
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), Version)

		return
	}

	setupLogging(slog.LevelInfo)

	config, err := readConfiguration()
	if err != nil {
		slog.Error("Failed to read the configuration.",
			"err", err,
		)
		ExitCode = createpath.StatusFailure

		return
	}

	setupLogging(config.LogLevel)

	app := NewApp(config)
	ExitCode = app.Launch(args)
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	execute()
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		ExitCode = createpath.StatusFailure
	}
}
