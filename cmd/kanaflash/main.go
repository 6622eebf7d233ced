// Package main provides the CLI entrypoint for kanaflash.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/kanaflash/internal/config"
	"github.com/verte-zerg/kanaflash/internal/kana"
	"github.com/verte-zerg/kanaflash/internal/logging"
	"github.com/verte-zerg/kanaflash/internal/model"
	"github.com/verte-zerg/kanaflash/internal/session"
	"github.com/verte-zerg/kanaflash/internal/stats"
	"github.com/verte-zerg/kanaflash/internal/statsui"
	"github.com/verte-zerg/kanaflash/internal/store"
	"github.com/verte-zerg/kanaflash/internal/study"
	"github.com/verte-zerg/kanaflash/internal/tui"
)

const flushTimeout = 5 * time.Second

var (
	flagDB       string
	flagLogLevel string

	studyScript  string
	studyShuffle bool
	studyCount   int
	studyOptions string

	statsPlain bool
	statsTop   int

	resetAll bool
	resetYes bool

	kanaScript string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kanaflash",
		Short:         "Hiragana and katakana flashcards",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runStudyCmd,
	}

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database path (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&studyScript, "script", config.DefaultScript, "script to study (hiragana or katakana)")
	rootCmd.Flags().BoolVar(&studyShuffle, "shuffle", config.DefaultShuffle, "shuffle the cards")
	rootCmd.Flags().IntVar(&studyCount, "count", config.DefaultCount, "cards per session when shuffled (0 = all)")
	rootCmd.Flags().StringVar(&studyOptions, "options", "", `raw study options JSON, e.g. '{"isShuffled":true,"characterCount":10}'`)

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newKanaCmd())

	return rootCmd
}

// loadSettings merges defaults, config file, environment and flags, in
// increasing precedence.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv(".env", config.DefaultEnvPath())
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to load environment: %w", err)
	}

	settings := config.Defaults()
	settings.ApplyFile(fileCfg)
	settings.ApplyEnv(envCfg)

	// Raw options from the file must not shadow explicit shuffle/count flags.
	flags := cmd.Flags()
	if !flags.Changed("options") && (flags.Changed("shuffle") || flags.Changed("count")) {
		settings.Options = ""
	}

	applyStringFlag(cmd, "db", &settings.DBPath, flagDB)
	applyStringFlag(cmd, "log-level", &settings.LogLevel, flagLogLevel)
	applyStringFlag(cmd, "script", &settings.Script, studyScript)
	applyBoolFlag(cmd, "shuffle", &settings.Shuffle, studyShuffle)
	applyIntFlag(cmd, "count", &settings.Count, studyCount)
	applyStringFlag(cmd, "options", &settings.Options, studyOptions)

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

func openState(ctx context.Context, settings config.Settings, log *slog.Logger) (*store.Store, *session.Store, error) {
	st, err := store.Open(settings.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	sess := session.New(st, session.WithLogger(log))
	if err := sess.LoadStoredData(ctx); err != nil {
		log.Warn("continuing with empty study data", "err", err)
	}
	return st, sess, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func runStudyCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := logging.New(settings.LogLevel, os.Stderr)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, sess, err := openState(ctx, settings, log)
	if err != nil {
		return err
	}
	defer closeStore(st)

	kanaType := model.KanaType(settings.Script)
	persister := session.NewPersister(st, log)
	run, err := study.NewRun(sess, study.Config{
		KanaType: kanaType,
		Cards:    kana.ForType(kanaType),
		Options:  studyOptionsFromSettings(settings),
		Writer:   persister,
	})
	if err != nil {
		persister.Close()
		return err
	}

	m := tui.NewModel(run, sess.SessionsByType(kanaType))
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := program.Run()

	flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := persister.Flush(flushCtx); err != nil {
		logErrf("timed out saving study data: %v\n", err)
	}
	persister.Close()
	if msg := recordSaveFailures(persister, sess); msg != "" {
		logErrf("%s\n", msg)
	}

	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	if err := m.Err(); err != nil {
		return fmt.Errorf("study run failed: %w", err)
	}
	if summary, ok := m.Summary(); ok {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", summary.Title(), summary.Message()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// recordSaveFailures moves write-behind failures into the state error and
// returns it, or "" when every write succeeded.
func recordSaveFailures(p *session.Persister, sess *session.Store) string {
	n := p.Failures()
	if n == 0 {
		return ""
	}
	sess.SetError(fmt.Sprintf("failed to save data (%d writes): %v", n, p.LastError()))
	return sess.Snapshot().Error
}

// studyOptionsFromSettings prefers the raw options JSON over shuffle/count.
func studyOptionsFromSettings(s config.Settings) model.StudyOptions {
	if strings.TrimSpace(s.Options) != "" {
		return study.ParseOptions(s.Options)
	}
	opts := model.StudyOptions{IsShuffled: s.Shuffle}
	if s.Count > 0 {
		count := s.Count
		opts.CharacterCount = &count
	}
	return opts
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain text report")
	cmd.Flags().IntVar(&statsTop, "top", stats.DefaultTop, "characters listed in the plain report")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := logging.New(settings.LogLevel, os.Stderr)
	st, sess, err := openState(context.Background(), settings, log)
	if err != nil {
		return err
	}
	defer closeStore(st)

	out := cmd.OutOrStdout()
	if statsPlain || !isTerminal(out) {
		report := stats.BuildReport(sess.Snapshot(), kana.All())
		return stats.RenderReport(out, report, stats.RenderOptions{
			Top:   statsTop,
			Color: stats.ShouldUseColor(out),
		})
	}

	program := tea.NewProgram(statsui.NewModel(sess), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear study data",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetAll, "all", false, "delete every stored key")
	cmd.Flags().BoolVar(&resetYes, "yes", false, "do not ask for confirmation")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	log := logging.New(settings.LogLevel, os.Stderr)

	what := "study history and character progress"
	if resetAll {
		what = "the whole database"
	}
	if !resetYes {
		ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Clear %s?", what))
		if err != nil {
			return err
		}
		if !ok {
			logErrln("Aborted.")
			return nil
		}
	}

	ctx := context.Background()
	st, sess, err := openState(ctx, settings, log)
	if err != nil {
		return err
	}
	defer closeStore(st)

	if resetAll {
		keys, err := st.Keys(ctx)
		if err != nil {
			return fmt.Errorf("failed to list keys: %w", err)
		}
		log.Debug("clearing keys", "keys", keys)
		var clearErr error
		store.NewSafe(st, log, store.OnError(func(err error) { clearErr = err })).Clear(ctx)
		if clearErr != nil {
			return fmt.Errorf("failed to clear data: %w", clearErr)
		}
	} else {
		sess.ClearSessions()
		snap := sess.Snapshot()
		if _, err := sess.SaveSessions(ctx, snap.Sessions); err != nil {
			return err
		}
		if _, err := sess.SaveKanaProgress(ctx, snap.KanaProgress); err != nil {
			return err
		}
	}
	logErrf("Cleared %s.\n", what)
	return nil
}

func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func newKanaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kana [id...]",
		Short: "List characters with your progress",
		RunE:  runKanaCmd,
	}
	cmd.Flags().StringVar(&kanaScript, "script", "", "hiragana or katakana (default: both)")
	return cmd
}

func runKanaCmd(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	dataset, err := selectKana(kanaScript, args)
	if err != nil {
		return err
	}

	log := logging.New(settings.LogLevel, os.Stderr)
	st, err := store.Open(settings.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)
	progress := store.GetOr(context.Background(), store.NewSafe(st, log), store.KeyKanaProgress, model.ProgressMap{})

	return writeKanaTable(cmd.OutOrStdout(), dataset, progress)
}

// selectKana returns the characters named by ids, or the script's full list
// (both scripts when script is empty) when no ids are given.
func selectKana(script string, ids []string) ([]model.Kana, error) {
	if len(ids) > 0 {
		out := make([]model.Kana, 0, len(ids))
		for _, id := range ids {
			k, ok := kana.Lookup(strings.ToLower(strings.TrimSpace(id)))
			if !ok {
				return nil, fmt.Errorf("unknown kana id %q", id)
			}
			out = append(out, k)
		}
		return out, nil
	}
	if script == "" {
		return kana.All(), nil
	}
	t := model.KanaType(strings.ToLower(script))
	if !t.Valid() {
		return nil, fmt.Errorf("--script must be hiragana or katakana")
	}
	return kana.ForType(t), nil
}

func writeKanaTable(w io.Writer, dataset []model.Kana, progress model.ProgressMap) error {
	headers := []string{"ID", "Kana", "Romaji", "Correct", "Incorrect", "Accuracy"}
	rows := make([][]string, 0, len(dataset))
	for _, k := range dataset {
		p := progress[k.ID]
		acc := "-"
		if p.Total() > 0 {
			acc = fmt.Sprintf("%d%%", stats.Accuracy(p.CorrectCount, p.Total()))
		}
		rows = append(rows, []string{
			k.ID,
			k.Character,
			k.Romaji,
			fmt.Sprintf("%d", p.CorrectCount),
			fmt.Sprintf("%d", p.IncorrectCount),
			acc,
		})
	}
	rightAlign := map[int]bool{3: true, 4: true, 5: true}
	for _, line := range stats.FormatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template(config.Defaults())), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func applyStringFlag(cmd *cobra.Command, name string, target *string, value string) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyIntFlag(cmd *cobra.Command, name string, target *int, value int) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func applyBoolFlag(cmd *cobra.Command, name string, target *bool, value bool) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
