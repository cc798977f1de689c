// Command rake extracts ranked keyphrases from a document.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cognicore/rake/internal/docs"
	"github.com/cognicore/rake/internal/htmltext"
	"github.com/cognicore/rake/internal/logging"
	"github.com/cognicore/rake/internal/server"
	"github.com/cognicore/rake/internal/watcher"
	"github.com/cognicore/rake/pkg/rake"
	"github.com/cognicore/rake/pkg/rake/config"
	"github.com/cognicore/rake/pkg/rake/rank"
	"github.com/cognicore/rake/pkg/rake/stoplist"
	"github.com/cognicore/rake/pkg/rake/store"
	"github.com/cognicore/rake/pkg/rake/store/sqlite"
)

var version = "dev"

// errUsage means required input was missing; usage has been printed.
var errUsage = errors.New("usage")

func main() {
	args := os.Args[1:]
	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	var err error
	switch command {
	case "serve":
		err = runServe(args[1:])
	case "batch":
		err = runBatch(args[1:], os.Stdout)
	case "import-stoplist":
		err = runImport(args[1:], os.Stdout)
	case "languages":
		err = runLanguages(args[1:], os.Stdout)
	case "version", "--version", "-v":
		fmt.Printf("rake version %s\n", version)
	case "help", "--help", "-h":
		printUsage(os.Stdout)
	default:
		err = runExtract(args, os.Stdout)
	}

	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "rake:", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  rake [flags] <document> [language]    extract keyphrases from a document
  rake serve [flags]                    run the HTTP extraction API
  rake batch [flags] <docs.jsonl>       extract from each {"id","text"} line, JSONL out
  rake import-stoplist -db D -lang L <file>
                                        store a stopword list for a language
  rake languages [-db D]                list built-in and stored languages
  rake version

Flags must come before the document.

Extraction flags:
  -config FILE     YAML config file
  -lang CODE       stopword language (en, id, ms; unknown codes use en)
  -stopwords FILE  stopword override (one per line, or YAML terms: list)
  -db FILE         SQLite stopword repository
  -top N           show only the N best phrases (0 = all)
  -order ORDER     desc or asc
  -format FORMAT   text or json
  -html            treat the document as HTML
  -workers N       score phrases with N goroutines
  -watch           re-run when the document changes
  -debug           debug logging
`)
}

// commonFlags binds the settings shared by extract and serve.
type commonFlags struct {
	fs         *flag.FlagSet
	configPath *string
	lang       *string
	stopwords  *string
	db         *string
	top        *int
	order      *string
	html       *bool
	workers    *int
	debug      *bool
}

func newCommonFlags(name string) *commonFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return &commonFlags{
		fs:         fs,
		configPath: fs.String("config", "", "YAML config file"),
		lang:       fs.String("lang", "", "stopword language code"),
		stopwords:  fs.String("stopwords", "", "stopword override file"),
		db:         fs.String("db", "", "SQLite stopword repository"),
		top:        fs.Int("top", 0, "number of phrases to show (0 = all)"),
		order:      fs.String("order", "", "ranking order: desc or asc"),
		html:       fs.Bool("html", false, "treat documents as HTML"),
		workers:    fs.Int("workers", 0, "scoring goroutines"),
		debug:      fs.Bool("debug", false, "enable debug logging"),
	}
}

// resolve layers defaults, config file, environment and explicitly set flags.
func (c *commonFlags) resolve() (*config.Config, error) {
	cfg := config.Default()
	if *c.configPath != "" {
		loaded, err := config.Load(*c.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Language = *c.lang
		case "stopwords":
			cfg.StopwordsFile = *c.stopwords
		case "db":
			cfg.DB = *c.db
		case "top":
			cfg.Top = *c.top
		case "order":
			cfg.Order = strings.ToLower(*c.order)
		case "html":
			cfg.HTML = *c.html
		case "workers":
			cfg.Workers = *c.workers
		case "debug":
			cfg.Debug = *c.debug
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStore(ctx context.Context, path string) (store.Store, error) {
	if path == "" {
		return nil, nil
	}
	st, err := sqlite.OpenSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildRake resolves the stopword set and constructs the extractor.
func buildRake(ctx context.Context, cfg *config.Config, st store.Store, logger *zap.Logger) (*rake.Rake, *config.Components, error) {
	loader := config.Loader{
		Language:      cfg.Language,
		StopwordsPath: cfg.StopwordsFile,
		Store:         st,
	}
	comp, err := loader.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	r := rake.New(rake.Options{
		Stopwords: comp.Stopwords,
		Workers:   cfg.Workers,
		Logger:    logger,
	})
	return r, comp, nil
}

// extractFile reads a document and runs extraction over it.
func extractFile(r *rake.Rake, path string, html bool) (*rake.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	text := string(data)
	if html {
		text = htmltext.Extract(text)
	}
	return r.Process(text), nil
}

func writeResult(w io.Writer, res *rake.Result, cfg *config.Config, format string) error {
	pairs := res.Ranked(cfg.Order == config.OrderAsc, cfg.Top)

	switch format {
	case "json":
		if pairs == nil {
			pairs = []rank.Pair{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			ID         string      `json:"id"`
			Keyphrases []rank.Pair `json:"keyphrases"`
		}{res.ID, pairs})
	default:
		if len(pairs) == 0 {
			_, err := fmt.Fprintln(w, "No keyphrases found.")
			return err
		}
		for _, p := range pairs {
			if _, err := fmt.Fprintf(w, "%8.4f  %s\n", p.Score, p.Phrase); err != nil {
				return err
			}
		}
		return nil
	}
}

func runExtract(args []string, out io.Writer) error {
	flags := newCommonFlags("rake")
	format := flags.fs.String("format", "text", "output format: text or json")
	watch := flags.fs.Bool("watch", false, "re-run extraction when the document changes")
	flags.fs.Usage = func() { printUsage(os.Stderr) }
	if err := flags.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	rest := flags.fs.Args()
	if len(rest) == 0 {
		printUsage(os.Stderr)
		return errUsage
	}
	// flag parsing stops at the document, so anything after it that looks
	// like a flag was not applied
	if len(rest) > 2 || (len(rest) == 2 && strings.HasPrefix(rest[1], "-")) {
		fmt.Fprintf(os.Stderr, "rake: unexpected arguments after %s: %s (flags must come before the document)\n",
			rest[0], strings.Join(rest[1:], " "))
		return errUsage
	}
	docPath := rest[0]
	if len(rest) > 1 && *flags.lang == "" {
		_ = flags.fs.Set("lang", rest[1])
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("unknown format %q", *format)
	}

	cfg, err := flags.resolve()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.DB)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	r, comp, err := buildRake(ctx, cfg, st, logger)
	if err != nil {
		return err
	}
	logger.Debug("stopwords loaded",
		zap.String("language", string(comp.Language)),
		zap.String("source", comp.Source),
		zap.Int("count", len(comp.Stopwords)),
	)

	res, err := extractFile(r, docPath, cfg.HTML)
	if err != nil {
		return err
	}
	if err := writeResult(out, res, cfg, *format); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	w := watcher.New(docPath, func(path string) {
		res, err := extractFile(r, path, cfg.HTML)
		if err != nil {
			logger.Error("re-extract failed", zap.String("path", path), zap.Error(err))
			return
		}
		fmt.Fprintln(out)
		if err := writeResult(out, res, cfg, *format); err != nil {
			logger.Error("write result failed", zap.Error(err))
		}
	}, watcher.WithLogger(logger))
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("watch %s: %w", docPath, err)
	}
	defer w.Stop()
	logger.Info("watching document", zap.String("path", docPath))

	<-ctx.Done()
	return nil
}

func runBatch(args []string, out io.Writer) error {
	flags := newCommonFlags("batch")
	if err := flags.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}
	if flags.fs.NArg() != 1 {
		printUsage(os.Stderr)
		return errUsage
	}

	cfg, err := flags.resolve()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	items, err := docs.LoadFromJSONL(flags.fs.Arg(0), logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx, cfg.DB)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	r, _, err := buildRake(ctx, cfg, st, logger)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	for _, item := range items {
		text := item.Text
		if cfg.HTML {
			text = htmltext.Extract(text)
		}
		pairs := r.Process(text).Ranked(cfg.Order == config.OrderAsc, cfg.Top)
		if pairs == nil {
			pairs = []rank.Pair{}
		}
		if err := enc.Encode(struct {
			ID         string      `json:"id"`
			Keyphrases []rank.Pair `json:"keyphrases"`
		}{item.ID, pairs}); err != nil {
			return err
		}
	}
	logger.Debug("batch complete", zap.Int("documents", len(items)))
	return nil
}

func runServe(args []string) error {
	flags := newCommonFlags("serve")
	host := flags.fs.String("host", "", "listen host")
	port := flags.fs.Int("port", 0, "listen port")
	if err := flags.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	cfg, err := flags.resolve()
	if err != nil {
		return err
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg.DB)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	srv := server.New(cfg, st, logger)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Stop(shutdownCtx)
}

func runImport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("import-stoplist", flag.ContinueOnError)
	db := fs.String("db", "", "SQLite stopword repository (required)")
	lang := fs.String("lang", "", "language code to store the list under (required)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *db == "" || *lang == "" || fs.NArg() != 1 {
		printUsage(os.Stderr)
		return errUsage
	}

	words, err := config.LoadStopwords(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("load stoplist: %w", err)
	}

	ctx := context.Background()
	st, err := openStore(ctx, *db)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.UpsertStoplist(ctx, *lang, words); err != nil {
		return fmt.Errorf("store stoplist: %w", err)
	}
	fmt.Fprintf(out, "stored %d stopwords for %q\n", len(words), store.LanguageKey(*lang))
	return nil
}

func runLanguages(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	db := fs.String("db", "", "SQLite stopword repository")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	for _, lang := range stoplist.Languages() {
		fmt.Fprintf(out, "%s\tbuiltin\t%d\n", lang, len(lang.Words()))
	}

	ctx := context.Background()
	st, err := openStore(ctx, *db)
	if err != nil {
		return err
	}
	if st == nil {
		return nil
	}
	defer st.Close()

	langs, err := st.Languages(ctx)
	if err != nil {
		return fmt.Errorf("list languages: %w", err)
	}
	for _, lang := range langs {
		words, _, err := st.GetStoplist(ctx, lang)
		if err != nil {
			return fmt.Errorf("load %s: %w", lang, err)
		}
		fmt.Fprintf(out, "%s\tstored\t%d\n", lang, len(words))
	}
	return nil
}
