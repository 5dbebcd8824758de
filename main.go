package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/Adefebrian/vocab/internal/ai"
	"github.com/Adefebrian/vocab/internal/config"
	"github.com/Adefebrian/vocab/internal/conjugation"
	"github.com/Adefebrian/vocab/internal/database"
	"github.com/Adefebrian/vocab/internal/excel"
	"github.com/Adefebrian/vocab/internal/level"
	"github.com/Adefebrian/vocab/internal/notify"
	"github.com/Adefebrian/vocab/internal/quiz"
	"github.com/Adefebrian/vocab/internal/scheduler"
	"github.com/Adefebrian/vocab/internal/spaced_repetition"
	"github.com/Adefebrian/vocab/pkg/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vocab",
		Short:         "English verb conjugation flashcards with spaced review",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newAddCmd(),
		newShowCmd(),
		newListCmd(),
		newRemoveCmd(),
		newDueCmd(),
		newReviewCmd(),
		newQuizCmd(),
		newImportCmd(),
		newExportCmd(),
		newEnrichCmd(),
		newRemindCmd(),
		newStatsCmd(),
	)
	return root
}

// app bundles the dependencies shared by all commands.
type app struct {
	cfg         config.Config
	db          *sqlx.DB
	verbs       *database.VerbRepository
	states      *database.ReviewStateRepository
	quizResults *database.QuizResultRepository
	stats       *database.StatisticsRepository
	engine      *conjugation.Engine
	classifier  *level.Classifier
}

func openApp() (*app, error) {
	cfg := config.Load()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:         cfg,
		db:          db,
		verbs:       database.NewVerbRepository(db),
		states:      database.NewReviewStateRepository(db),
		quizResults: database.NewQuizResultRepository(db),
		stats:       database.NewStatisticsRepository(db),
		engine:      conjugation.NewEngine(nil),
		classifier:  level.NewClassifier(level.Config{}),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// recordOutcome folds one answer into the verb's review state, creating
// the state on first contact.
func (a *app) recordOutcome(itemID int64, correct bool, now time.Time) (models.ReviewState, error) {
	state, err := a.states.Get(itemID)
	if errors.Is(err, database.ErrNotFound) {
		fresh := spaced_repetition.NewState(itemID, now)
		state = &fresh
	} else if err != nil {
		return models.ReviewState{}, err
	}

	updated := spaced_repetition.RecordOutcome(*state, correct, now)
	if err := a.states.Upsert(&updated); err != nil {
		return models.ReviewState{}, err
	}
	return updated, nil
}

func newAddCmd() *cobra.Command {
	var meaning, example, category, levelName string

	cmd := &cobra.Command{
		Use:   "add <verb>",
		Short: "Conjugate a verb and add it to the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			forms, err := a.engine.Conjugate(args[0])
			if err != nil {
				return err
			}

			if _, err := a.verbs.GetByBase(forms.Base); err == nil {
				return fmt.Errorf("'%s' is already in the collection", forms.Base)
			} else if !errors.Is(err, database.ErrNotFound) {
				return err
			}

			lvl := a.classifier.Classify(forms.Base)
			if levelName != "" {
				if lvl, err = models.ParseLevel(strings.ToLower(levelName)); err != nil {
					return err
				}
			}

			verb := &models.VerbEntry{
				Base:       forms.Base,
				Past:       forms.Past,
				Participle: forms.Participle,
				Type:       forms.Type,
				Level:      lvl,
				Category:   strings.ToLower(strings.TrimSpace(category)),
				Meaning:    strings.TrimSpace(meaning),
				Example:    strings.TrimSpace(example),
			}
			if err := a.verbs.Create(verb); err != nil {
				return err
			}

			fmt.Printf("Added %s / %s / %s (%s, %s)\n",
				verb.Base, verb.Past, verb.Participle, verb.Type, verb.Level)
			return nil
		},
	}

	cmd.Flags().StringVarP(&meaning, "meaning", "m", "", "Indonesian meaning")
	cmd.Flags().StringVarP(&example, "example", "e", "", "example sentence")
	cmd.Flags().StringVarP(&category, "category", "c", "", "topical category")
	cmd.Flags().StringVarP(&levelName, "level", "l", "", "override the classified level")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <verb>",
		Short: "Show a verb's forms, level and review progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			verb, err := a.verbs.GetByBase(args[0])
			if errors.Is(err, database.ErrNotFound) {
				// Not stored: derive the card on the fly.
				forms, err := a.engine.Conjugate(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s / %s / %s (%s, %s) - not in the collection\n",
					forms.Base, forms.Past, forms.Participle, forms.Type,
					a.classifier.Classify(forms.Base))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s / %s / %s (%s, %s)\n",
				verb.Base, verb.Past, verb.Participle, verb.Type, verb.Level)
			if verb.Category != "" {
				fmt.Printf("Category: %s\n", verb.Category)
			}
			if verb.Meaning != "" {
				fmt.Printf("Meaning:  %s\n", verb.Meaning)
			}
			if verb.Example != "" {
				fmt.Printf("Example:  %s\n", verb.Example)
			}

			state, err := a.states.Get(verb.ID)
			if errors.Is(err, database.ErrNotFound) {
				fmt.Println("Not reviewed yet.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Reviews:  %d correct, %d incorrect (ease %.1f)\n",
				state.CorrectCount, state.IncorrectCount, state.Ease)
			if state.Reviewed() {
				fmt.Printf("Next due: %s\n", state.NextDueAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var levelName, category, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the verb collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var verbs []models.VerbEntry
			switch {
			case search != "":
				verbs, err = a.verbs.Search(search)
			case levelName != "":
				lvl, perr := models.ParseLevel(strings.ToLower(levelName))
				if perr != nil {
					return perr
				}
				verbs, err = a.verbs.GetByLevel(lvl)
			case category != "":
				verbs, err = a.verbs.GetByCategory(strings.ToLower(category))
			default:
				verbs, err = a.verbs.GetAll()
			}
			if err != nil {
				return err
			}

			if len(verbs) == 0 {
				fmt.Println("No verbs found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BASE\tPAST\tPARTICIPLE\tTYPE\tLEVEL\tCATEGORY\tMEANING")
			for _, v := range verbs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					v.Base, v.Past, v.Participle, v.Type, v.Level, v.Category, v.Meaning)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&levelName, "level", "l", "", "filter by level")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search base forms and meanings")
	return cmd
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <verb>",
		Short: "Remove a verb and its review history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			verb, err := a.verbs.GetByBase(args[0])
			if err != nil {
				return err
			}
			if err := a.verbs.Delete(verb.ID); err != nil {
				return err
			}
			fmt.Printf("Removed '%s'.\n", verb.Base)
			return nil
		},
	}
}

func newDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List the verbs that are due for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			verbs, err := a.verbs.GetAll()
			if err != nil {
				return err
			}
			stored, err := a.states.GetAll()
			if err != nil {
				return err
			}

			byItem := make(map[int64]models.ReviewState, len(stored))
			for _, s := range stored {
				byItem[s.ItemID] = s
			}

			// Verbs never touched by a review have no stored state yet;
			// they enter the queue as brand-new items.
			now := time.Now()
			states := make([]models.ReviewState, 0, len(verbs))
			bases := make(map[int64]string, len(verbs))
			for _, v := range verbs {
				bases[v.ID] = v.Base
				if s, ok := byItem[v.ID]; ok {
					states = append(states, s)
				} else {
					states = append(states, spaced_repetition.NewState(v.ID, now))
				}
			}

			due := spaced_repetition.DueItems(states, now)
			if len(due) == 0 {
				fmt.Println("Nothing is due. Well done!")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BASE\tEASE\tSTATUS")
			for _, s := range due {
				status := "new"
				if s.Reviewed() {
					status = fmt.Sprintf("due since %s", s.NextDueAt.Format("2006-01-02"))
				}
				fmt.Fprintf(w, "%s\t%.1f\t%s\n", bases[s.ItemID], s.Ease, status)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\n%d verb(s) to review.\n", len(due))
			return nil
		},
	}
}

func newReviewCmd() *cobra.Command {
	var correct, wrong bool

	cmd := &cobra.Command{
		Use:   "review <verb>",
		Short: "Record a review answer for a verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if correct == wrong {
				return fmt.Errorf("pass exactly one of --correct or --wrong")
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			verb, err := a.verbs.GetByBase(args[0])
			if err != nil {
				return err
			}

			state, err := a.recordOutcome(verb.ID, correct, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Recorded. '%s' has ease %.1f, next review on %s.\n",
				verb.Base, state.Ease, state.NextDueAt.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&correct, "correct", false, "the answer was correct")
	cmd.Flags().BoolVar(&wrong, "wrong", false, "the answer was wrong")
	return cmd
}

func newQuizCmd() *cobra.Command {
	var count int
	var kindName string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take a multiple-choice quiz over the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseQuizKind(kindName)
			if err != nil {
				return err
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if count <= 0 {
				count = a.cfg.QuizQuestions
			}

			builder := quiz.NewBuilder(a.verbs, a.quizResults, nil, a.cfg.QuizOptions)
			items, err := builder.Build(count, kind)
			if err != nil {
				return err
			}

			scanner := bufio.NewScanner(os.Stdin)
			start := time.Now()
			answers := make([]int, 0, len(items))

			for i, item := range items {
				fmt.Printf("\n%d) %s\n", i+1, item.Question)
				for j, opt := range item.Options {
					fmt.Printf("   %c) %s\n", 'a'+j, opt)
				}

				idx := readAnswer(scanner, len(item.Options))
				if idx < 0 {
					return fmt.Errorf("quiz aborted")
				}
				answers = append(answers, idx)

				ok := idx == item.CorrectIndex
				if ok {
					fmt.Println("Correct!")
				} else {
					fmt.Printf("Wrong. The answer is '%s'.\n", item.Answer())
				}

				// Every answer also feeds the review schedule.
				if _, err := a.recordOutcome(item.VerbID, ok, time.Now()); err != nil {
					log.Printf("Error recording outcome for '%s': %v", item.VerbBase, err)
				}
			}

			score, err := quiz.Score(items, answers)
			if err != nil {
				return err
			}
			duration := int(time.Since(start).Seconds())

			fmt.Printf("\nScore: %d/%d\n", score, len(items))
			return builder.SaveResult(kind, len(items), score, duration, time.Now())
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of questions")
	cmd.Flags().StringVarP(&kindName, "kind", "k", "mixed", "question kind: past, participle or mixed")
	return cmd
}

func parseQuizKind(name string) (models.QuizKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "past":
		return models.AskPast, nil
	case "participle":
		return models.AskParticiple, nil
	case "", "mixed":
		return "", nil
	default:
		return "", fmt.Errorf("unknown quiz kind %q", name)
	}
}

// readAnswer prompts until it gets a letter or number that selects an
// option. It returns -1 when stdin is closed.
func readAnswer(scanner *bufio.Scanner, optionCount int) int {
	for {
		fmt.Print("Your answer: ")
		if !scanner.Scan() {
			return -1
		}
		in := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if in == "" {
			continue
		}
		if len(in) == 1 && in[0] >= 'a' && int(in[0]-'a') < optionCount {
			return int(in[0] - 'a')
		}
		if n, err := strconv.Atoi(in); err == nil && n >= 1 && n <= optionCount {
			return n - 1
		}
		fmt.Println("Enter the option's letter or number.")
	}
}

func newImportCmd() *cobra.Command {
	var sheet string
	var startRow int

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import verbs from an Excel or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			cfg := excel.DefaultImportConfig()
			cfg.FilePath = args[0]
			if sheet != "" {
				cfg.SheetName = sheet
			}
			if startRow > 0 {
				cfg.StartRow = startRow
			}

			importer := excel.NewImporter(a.verbs, a.engine, a.classifier)
			result, err := importer.Import(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("Processed %d row(s): %d created, %d updated.\n",
				result.TotalProcessed, result.Created, result.Updated)
			for _, e := range result.Errors {
				fmt.Printf("  %s\n", e)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name for Excel files")
	cmd.Flags().IntVar(&startRow, "start-row", 0, "first data row (1-based)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the collection to an Excel or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			cfg := excel.DefaultExportConfig()
			cfg.FilePath = args[0]
			if sheet != "" {
				cfg.SheetName = sheet
			}

			exporter := excel.NewExporter(a.verbs)
			count, err := exporter.Export(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d verb(s) to %s.\n", count, cfg.FilePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name for Excel output")
	return cmd
}

func newEnrichCmd() *cobra.Command {
	var useAI bool

	cmd := &cobra.Command{
		Use:   "enrich [verb]",
		Short: "Fill in missing meanings and examples from online services",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			base := ""
			if len(args) == 1 {
				base = args[0]
			}
			return runEnrich(a, base, useAI)
		},
	}

	cmd.Flags().BoolVar(&useAI, "ai", false, "also generate examples and level suggestions with OpenAI")
	return cmd
}

func runEnrich(a *app, base string, useAI bool) error {
	ctx := context.Background()

	var targets []models.VerbEntry
	if base != "" {
		verb, err := a.verbs.GetByBase(base)
		if err != nil {
			return err
		}
		targets = []models.VerbEntry{*verb}
	} else {
		all, err := a.verbs.GetAll()
		if err != nil {
			return err
		}
		for _, v := range all {
			if v.Meaning == "" || (useAI && v.Example == "") {
				targets = append(targets, v)
			}
		}
	}
	if len(targets) == 0 {
		fmt.Println("Nothing to enrich.")
		return nil
	}

	translator := ai.NewTranslator(a.cfg.TranslateURL, a.cfg.TranslateLangPair)

	var client *ai.Client
	if useAI {
		var err error
		client, err = ai.New(ai.Config{
			APIKey:  a.cfg.OpenAIKey,
			BaseURL: a.cfg.OpenAIBaseURL,
			Model:   a.cfg.OpenAIModel,
		})
		if err != nil {
			return err
		}
	}

	enriched := 0
	for i := range targets {
		v := &targets[i]
		changed := false

		if v.Meaning == "" {
			meaning, err := translator.Translate(ctx, v.Base)
			if err != nil {
				// The card keeps working without a meaning; the
				// heuristic level and derived forms already stand.
				log.Printf("Translation for '%s' failed: %v", v.Base, err)
			} else {
				v.Meaning = meaning
				changed = true
			}
		}

		if client != nil {
			if v.Example == "" {
				v.Example = client.GenerateExampleWithFallback(ctx, v)
				changed = true
			}
			if lvl, err := client.SuggestLevel(ctx, v.Base); err == nil {
				if lvl != v.Level {
					v.Level = lvl
					changed = true
				}
			} else {
				log.Printf("Level suggestion for '%s' failed, keeping %s: %v", v.Base, v.Level, err)
			}
		}

		if changed {
			if err := a.verbs.Update(v); err != nil {
				return err
			}
			enriched++
			fmt.Printf("Enriched '%s'.\n", v.Base)
		}
	}

	fmt.Printf("Enriched %d of %d verb(s).\n", enriched, len(targets))
	return nil
}

func newRemindCmd() *cobra.Command {
	var now bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send due-review reminders, once or on a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var notifier scheduler.Notifier = notify.NewConsole(nil)
			if a.cfg.TelegramToken != "" && a.cfg.TelegramChatID != 0 {
				tg, err := notify.NewTelegram(a.cfg.TelegramToken, a.cfg.TelegramChatID)
				if err != nil {
					log.Printf("Telegram unavailable, printing to console instead: %v", err)
				} else {
					notifier = tg
				}
			}

			s := scheduler.New(a.states, notifier, scheduler.Config{
				StartHour: a.cfg.ReminderStartHour,
				EndHour:   a.cfg.ReminderEndHour,
			})

			if now {
				return s.RunManualCheck()
			}

			s.Start()
			defer s.Stop()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			log.Println("Reminder scheduler started. Press Ctrl+C to stop.")
			sig := <-sigChan
			log.Printf("Received signal: %v", sig)
			return nil
		},
	}

	cmd.Flags().BoolVar(&now, "now", false, "check once and exit")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection and review statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			stats, err := a.stats.Collect(context.Background(), time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Verbs:     %d (%d irregular, %d regular)\n",
				stats.TotalVerbs, stats.IrregularVerbs, stats.RegularVerbs)
			for _, lc := range stats.ByLevel {
				fmt.Printf("  %-12s %d\n", lc.Level+":", lc.Count)
			}
			fmt.Printf("Reviewed:  %d verb(s), %d due now\n", stats.ReviewedVerbs, stats.DueVerbs)

			total := stats.TotalCorrect + stats.TotalIncorrect
			if total > 0 {
				fmt.Printf("Answers:   %d correct / %d total (%.0f%%)\n",
					stats.TotalCorrect, total, float64(stats.TotalCorrect)/float64(total)*100)
			}
			fmt.Printf("Quizzes:   %d taken\n", stats.QuizzesTaken)
			return nil
		},
	}
}
