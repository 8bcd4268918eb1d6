package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/pzshine/membit-prediction-market-insight/internal/analyst"
	"github.com/pzshine/membit-prediction-market-insight/internal/cli"
	"github.com/pzshine/membit-prediction-market-insight/internal/config"
	"github.com/pzshine/membit-prediction-market-insight/internal/gemini"
	"github.com/pzshine/membit-prediction-market-insight/internal/logging"
	"github.com/pzshine/membit-prediction-market-insight/internal/membit"
)

func main() {
	// Setup logger
	logger := logging.NewLogger()

	// Load environment variables
	config.LoadEnv(logger)

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	membitCfg := membit.LoadConfig()
	if membitCfg.APIKey == "" {
		logger.Fatal("Missing API key. Please set MEMBIT_API_KEY in your environment.")
	}
	membitCfg.Logger = logger
	searchClient, err := membit.NewClient(membitCfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Membit client")
	}

	var summarizer cli.Summarizer
	if geminiCfg := gemini.LoadConfig(); geminiCfg.APIKey != "" {
		geminiClient, err := gemini.NewClient(geminiCfg)
		if err != nil {
			logger.WithError(err).Warn("Failed to create Gemini client - summarization disabled")
		} else {
			logger.WithField("model", geminiClient.Model()).Debug("Gemini summarization enabled")
			summarizer = analyst.New(geminiClient)
		}
	} else {
		logger.Debug("GOOGLE_API_KEY not set - summarization disabled")
	}

	app := &cli.App{
		Logger:     logger,
		Search:     searchClient,
		Summarizer: summarizer,
	}
	if err := cli.NewRootCmd(app).Execute(); err != nil {
		logger.WithError(err).Fatal("Command failed")
	}
}
