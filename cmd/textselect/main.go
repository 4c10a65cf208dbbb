package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/textselect/internal/app"
	"github.com/hyperifyio/textselect/internal/textrange"
)

func main() {
	var (
		configPath    string
		envFiles      string
		docPath       string
		selectionPath string
		rootSelector  string
		outputPath    string
		format        string
		verbose       bool
		logFile       string
		showVersion   bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("TEXTSELECT_CONFIG"), "Path to YAML or JSON config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load before reading the environment")
	flag.StringVar(&docPath, "doc", "", "Path to the HTML document")
	flag.StringVar(&selectionPath, "selection", "", "Path to the YAML/JSON selection to replay")
	flag.StringVar(&rootSelector, "root", "body", "Root element limiting the selection (#id, .class or tag)")
	flag.StringVar(&outputPath, "out", "", "Output path; empty or '-' writes to stdout")
	flag.StringVar(&format, "format", "json", "Output format: json or yaml")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.StringVar(&logFile, "log.file", "", "Optional rotated log file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("textselect %s (%s)\n", app.BuildVersion, app.BuildCommit)
		return
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		fmt.Fprintf(os.Stderr, "load env files: %v\n", err)
		os.Exit(1)
	}

	cfg := app.Config{
		DocPath:       docPath,
		SelectionPath: selectionPath,
		RootSelector:  rootSelector,
		OutputPath:    outputPath,
		Format:        format,
		Verbose:       verbose,
		LogFile:       logFile,
	}
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	closer := app.SetupLogging(cfg)
	defer closer.Close()

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		closer.Close()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		closer.Close()
		os.Exit(exitCode(err))
	}
}

// exitCode maps structural document errors to 2 and everything else to 1.
func exitCode(err error) int {
	if textrange.IsStructural(err) {
		return 2
	}
	return 1
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
