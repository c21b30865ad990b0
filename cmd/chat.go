package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/chat"
	"github.com/spigell/career-compass/internal/compass"
	"github.com/spigell/career-compass/internal/logger"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive career conversation",
	Run: func(_ *cobra.Command, _ []string) {
		runChat()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().Duration("typing-delay", chat.DefaultTypingDelay, "pause before the next question is shown")
	chatCmd.Flags().Duration("scoring-delay", chat.DefaultScoringDelay, "pause before the matches are shown")

	viper.BindPFlag("typing-delay", chatCmd.Flags().Lookup("typing-delay"))
	viper.BindPFlag("scoring-delay", chatCmd.Flags().Lookup("scoring-delay"))
}

func runChat() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Logs go to stderr so they do not interleave with the prompts.
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"), "stderr")
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the chat",
		zap.String("version", version),
		zap.Duration("typing_delay", config.TypingDelay),
		zap.Duration("scoring_delay", config.ScoringDelay),
	)

	narrator, err := newNarrator(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping ai narration", zap.Error(err))
	}

	console := chat.NewPromptConsole()
	console.Show(chat.Header())

	runner := chat.NewRunner(compass.NewSession(), console, narrator, chat.Config{
		TypingDelay:  config.TypingDelay,
		ScoringDelay: config.ScoringDelay,
	}, logger)

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("conversation failed", zap.Error(err))
	}
}
