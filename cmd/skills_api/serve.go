package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-skills-analyzer/internal/config"
	"github.com/jonathan/job-skills-analyzer/internal/logger"
	"github.com/jonathan/job-skills-analyzer/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveLexicon    string
	serveLogJSON    bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveLexicon, "lexicon", "", "Path to a custom skills database JSON (default: built-in)")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Log in JSON format")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Debug-level logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:        servePort,
		LexiconPath: serveLexicon,
		LogJSON:     serveLogJSON,
		Verbose:     serveVerbose,
	}

	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*loaded)
		cfg.LogJSON = cfg.LogJSON || loaded.LogJSON
		cfg.Verbose = cfg.Verbose || loaded.Verbose
	}

	cfg.FromEnv()
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	extractor, aggregator, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}, extractor, aggregator, log)

	return srv.Start()
}
