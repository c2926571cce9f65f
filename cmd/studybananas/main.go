package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vytor/studybananas/internal/commands"
	"github.com/vytor/studybananas/internal/config"
	"github.com/vytor/studybananas/internal/db"
	"github.com/vytor/studybananas/internal/errors"
	"github.com/vytor/studybananas/internal/logger"
	"github.com/vytor/studybananas/internal/model"
	"github.com/vytor/studybananas/internal/repository/sqlite"
	"github.com/vytor/studybananas/internal/services"
)

var helpText = strings.Join([]string{
	commands.UsageHelp, commands.UsageExit,
	commands.UsageAddContact, commands.UsageEditContact, commands.UsageDeleteContact,
	commands.UsageFindContacts, commands.UsageListContacts, commands.UsageClearContacts,
	commands.UsageSchedule, commands.UsageFlashcardSets, commands.UsageFlashcards,
	commands.UsageStartQuiz, commands.UsageAnswerQuiz, commands.UsageContinueQuiz,
	commands.UsageRefreshQuiz, commands.UsageCancelQuiz, commands.UsageStopQuiz,
	commands.UsageShowScore,
}, "\n\n")

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(cfg.LogColors),
		logger.WithOutput(os.Stderr),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("StudyBananas starting")
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("prefs_path=%s", cfg.PrefsPath)
	log.Debug("data_dir=%s", cfg.DataDir)

	if err := run(cfg, log, os.Stdin, os.Stdout); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("StudyBananas stopped")
}

func run(cfg config.Config, log *logger.Logger, in io.Reader, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, log)

	prefs, err := config.LoadPrefs(cfg.PrefsPath, cfg.DataDir)
	if err != nil {
		log.Warn("failed to read preferences, using defaults: %v", err)
	}

	// Open the three data files
	addressBook, err := db.Open(prefs.AddressBookFilePath, db.SchemaContacts)
	if err != nil {
		return fmt.Errorf("open address book: %w", err)
	}
	defer addressBook.Close()

	schedule, err := db.Open(prefs.ScheduleFilePath, db.SchemaSchedule)
	if err != nil {
		return fmt.Errorf("open schedule: %w", err)
	}
	defer schedule.Close()

	bank, err := db.Open(prefs.FlashcardBankFilePath, db.SchemaFlashcards)
	if err != nil {
		return fmt.Errorf("open flashcard bank: %w", err)
	}
	defer bank.Close()

	m := model.New(prefs)
	svc := services.NewCommandService(m,
		sqlite.NewContactRepository(addressBook.DB),
		sqlite.NewTaskRepository(schedule.DB),
		sqlite.NewFlashcardRepository(bank.DB),
	)
	if err := svc.Load(ctx); err != nil {
		log.Warn("some data could not be loaded: %v", err)
	}

	repl(ctx, svc, in, out)

	log.Debug("saving preferences to %s", cfg.PrefsPath)
	if err := config.SavePrefs(cfg.PrefsPath, m.UserPrefs()); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// repl reads one command per line until exit, end of input, or cancellation.
func repl(ctx context.Context, svc services.CommandService, in io.Reader, out io.Writer) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Fprint(out, "> ")
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return
			}
			res, err := svc.Execute(ctx, line)
			if err != nil {
				fmt.Fprintln(out, errors.UserMessage(err))
				fmt.Fprint(out, "> ")
				continue
			}
			fmt.Fprintln(out, res.Feedback)
			if res.ShowHelp {
				fmt.Fprintln(out)
				fmt.Fprintln(out, helpText)
			}
			if res.Exit {
				return
			}
			fmt.Fprint(out, "> ")
		}
	}
}
