// Command ordutils validates a single command-line option value and prints
// its normalized form.
//
//	ordutils <kind> [flags] [value]
//
// Kinds: file, dir, int, float, bool, list, choice, uuid. Run
// "ordutils <kind> -h" for the flags of a kind. Exit status is 0 when the
// value is valid, 1 when it is not and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/ordutils/pkg/config"
	"github.com/dmitrymomot/ordutils/pkg/logger"
	"github.com/dmitrymomot/ordutils/pkg/messages"
	"github.com/dmitrymomot/ordutils/pkg/pathprobe"
	"github.com/dmitrymomot/ordutils/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type app struct {
	cfg        Config
	log        *slog.Logger
	prober     pathprobe.Prober
	translator *messages.Translator
	stdout     io.Writer
	stderr     io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, cfgOpts ...config.Option) int {
	cfg, err := loadConfig(cfgOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitUsage
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to configure logger: %v\n", err)
		return exitUsage
	}

	prober, err := newProber(ctx, cfg)
	if err != nil {
		log.Error("failed to configure path probing", logger.Error(err))
		return exitUsage
	}

	a := &app{cfg: cfg, log: log, prober: prober, stdout: stdout, stderr: stderr}
	if cfg.MessagesFile != "" {
		a.translator, err = messages.LoadFile(ctx, cfg.MessagesFile, messages.WithLogger(log))
		if err != nil {
			log.Error("failed to load message catalog", slog.String("path", cfg.MessagesFile), logger.Error(err))
			return exitUsage
		}
	}
	return a.dispatch(ctx, args)
}

func newLogger(cfg Config, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithFormat(format),
		logger.WithOutput(out),
		logger.WithHandlerOptions(&slog.HandlerOptions{Level: level, AddSource: cfg.LogSource}),
		logger.WithAttr(logger.Component("ordutils")),
	), nil
}

// newProber probes local paths, plus s3:// URIs when a region is configured.
func newProber(ctx context.Context, cfg Config) (pathprobe.Prober, error) {
	mux := pathprobe.NewMux(pathprobe.NewLocalProber())
	if cfg.S3Region == "" {
		return mux, nil
	}

	s3p, err := pathprobe.NewS3Prober(ctx, pathprobe.S3Config{
		Region:         cfg.S3Region,
		AccessKeyID:    cfg.S3AccessKeyID,
		SecretKey:      cfg.S3SecretKey,
		Endpoint:       cfg.S3Endpoint,
		ForcePathStyle: cfg.S3ForcePathStyle,
	})
	if err != nil {
		return nil, err
	}
	mux.Handle("s3", s3p)
	return mux, nil
}

func (a *app) dispatch(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}

	name, rest := args[0], args[1:]
	if name == "-h" || name == "-help" || name == "--help" || name == "help" {
		a.usage()
		return exitOK
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(a.stderr, "unknown kind %q\n", name)
		a.usage()
		return exitUsage
	}

	out, err := cmd.run(ctx, a, rest)
	switch {
	case err == nil:
		for _, line := range out {
			fmt.Fprintln(a.stdout, line)
		}
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		attrs := []any{logger.Rule(name), logger.Error(err)}
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			attrs = append(attrs, logger.OptionName(ve.Description), logger.Value(ve.Value))
		}
		a.log.Debug("validation failed", attrs...)
		fmt.Fprintln(a.stderr, a.render(err))
		return exitInvalid
	}
}

func (a *app) render(err error) string {
	if a.translator == nil {
		return err.Error()
	}
	return a.translator.Render(a.cfg.Lang, err)
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "usage: ordutils <kind> [flags] [value]")
	fmt.Fprintln(a.stderr, "kinds:")
	for _, name := range commandNames() {
		fmt.Fprintf(a.stderr, "  %-8s %s\n", name, commands[name].summary)
	}
}
