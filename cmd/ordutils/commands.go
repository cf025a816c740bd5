package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/ordutils/pkg/cliopt"
	"github.com/dmitrymomot/ordutils/pkg/validator"
)

var errUsage = errors.New("usage error")

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) ([]string, error)
}

var commands = map[string]command{
	"file":   {summary: "path must name an existing file (or nothing, with -absent)", run: runFile},
	"dir":    {summary: "path must name an existing directory (or nothing, with -absent)", run: runDir},
	"int":    {summary: "integer, optionally bounded with -min", run: runInt},
	"float":  {summary: "floating-point number, optionally bounded with -min", run: runFloat},
	"bool":   {summary: "true/t/yes/y or false/f/no/n, any case", run: runBool},
	"list":   {summary: "delimited list validated item by item", run: runList},
	"choice": {summary: "member of -allowed, or key of -map translated to its value", run: runChoice},
	"uuid":   {summary: "canonical UUID", run: runUUID},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parse returns the optional positional value; nil means it was not given.
func (a *app) parse(fs *flag.FlagSet, args []string) (*string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	switch fs.NArg() {
	case 0:
		return nil, nil
	case 1:
		v := fs.Arg(0)
		return &v, nil
	default:
		fmt.Fprintf(a.stderr, "%s: expected one value, got %d\n", fs.Name(), fs.NArg())
		return nil, errUsage
	}
}

func (a *app) require(fs *flag.FlagSet, args []string) (string, error) {
	v, err := a.parse(fs, args)
	if err != nil {
		return "", err
	}
	if v == nil {
		fmt.Fprintf(a.stderr, "%s: missing value\n", fs.Name())
		return "", errUsage
	}
	return *v, nil
}

func (a *app) pathOptions(ctx context.Context, absent, nullable bool) ([]cliopt.Option, context.CancelFunc) {
	probeCtx, cancel := context.WithTimeout(ctx, a.cfg.ProbeTimeout)
	opts := []cliopt.Option{cliopt.WithProber(a.prober), cliopt.WithContext(probeCtx)}
	if absent {
		opts = append(opts, cliopt.MustNotExist())
	}
	if nullable {
		opts = append(opts, cliopt.AllowAbsent())
	}
	return opts, cancel
}

func runFile(ctx context.Context, a *app, args []string) ([]string, error) {
	return runPath(ctx, a, "file", cliopt.ValidateFile, args)
}

func runDir(ctx context.Context, a *app, args []string) ([]string, error) {
	return runPath(ctx, a, "dir", cliopt.ValidateDir, args)
}

func runPath(ctx context.Context, a *app, name string, validate func(*string, string, ...cliopt.Option) error, args []string) ([]string, error) {
	fs := a.flagSet(name)
	desc := fs.String("desc", "Invalid "+name+" path", "description used in the error message")
	absent := fs.Bool("absent", false, "require that nothing exists at the path")
	nullable := fs.Bool("nullable", false, "accept a missing value")
	path, err := a.parse(fs, args)
	if err != nil {
		return nil, err
	}

	opts, cancel := a.pathOptions(ctx, *absent, *nullable)
	defer cancel()

	if err := validate(path, *desc, opts...); err != nil {
		return nil, err
	}
	if path == nil {
		return nil, nil
	}
	return []string{*path}, nil
}

func runInt(_ context.Context, a *app, args []string) ([]string, error) {
	fs := a.flagSet("int")
	desc := fs.String("desc", "Invalid integer", "description used in the error message")
	nullable := fs.Bool("nullable", false, "accept a missing value")
	var opts []cliopt.Option
	fs.Func("min", "inclusive lower bound", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		opts = append(opts, cliopt.MinInt(n))
		return nil
	})
	raw, err := a.parse(fs, args)
	if err != nil {
		return nil, err
	}
	if *nullable {
		opts = append(opts, cliopt.AllowAbsent())
	}

	n, err := cliopt.ValidateInt(raw, *desc, opts...)
	if err != nil || n == nil {
		return nil, err
	}
	return []string{strconv.Itoa(*n)}, nil
}

func runFloat(_ context.Context, a *app, args []string) ([]string, error) {
	fs := a.flagSet("float")
	desc := fs.String("desc", "Invalid number", "description used in the error message")
	var opts []cliopt.Option
	fs.Func("min", "inclusive lower bound", func(s string) error {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		opts = append(opts, cliopt.MinFloat(x))
		return nil
	})
	raw, err := a.require(fs, args)
	if err != nil {
		return nil, err
	}

	x, err := cliopt.ValidateFloat(raw, *desc, opts...)
	if err != nil {
		return nil, err
	}
	return []string{strconv.FormatFloat(x, 'g', -1, 64)}, nil
}

func runBool(_ context.Context, a *app, args []string) ([]string, error) {
	fs := a.flagSet("bool")
	raw, err := a.require(fs, args)
	if err != nil {
		return nil, err
	}

	b, err := cliopt.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return []string{strconv.FormatBool(b)}, nil
}

func runList(ctx context.Context, a *app, args []string) ([]string, error) {
	fs := a.flagSet("list")
	desc := fs.String("desc", "Invalid list item", "description used in the error message")
	sep := fs.String("sep", a.cfg.ListSeparator, "item separator")
	kind := fs.String("item", "string", "item kind: string, int, float, bool, uuid, file, dir")
	allowed := fs.String("allowed", "", "comma-separated set every item must belong to")
	match := fs.String("match", "", "regular expression every item must match before conversion")
	raw, err := a.require(fs, args)
	if err != nil {
		return nil, err
	}

	probeCtx, cancel := context.WithTimeout(ctx, a.cfg.ProbeTimeout)
	defer cancel()

	item, err := a.itemRule(probeCtx, *kind)
	if err != nil {
		fmt.Fprintf(a.stderr, "list: %v\n", err)
		return nil, errUsage
	}
	if *match != "" {
		re, err := regexp.Compile(*match)
		if err != nil {
			fmt.Fprintf(a.stderr, "list: %v\n", err)
			return nil, errUsage
		}
		item = validator.Then(validator.Matches(re), item)
	}
	if *allowed != "" {
		item = validator.Then(item, validator.OneOf(strings.Split(*allowed, ",")))
	}

	return cliopt.ValidateList[string](raw, item, *desc, cliopt.WithSeparator(*sep))
}

// itemRule returns a rule normalizing one list item to its printed form.
func (a *app) itemRule(ctx context.Context, kind string) (validator.Rule[string, string], error) {
	switch kind {
	case "string":
		return validator.NotBlank, nil
	case "int":
		return validator.Then(validator.Rule[string, int](validator.ParseInt), format(strconv.Itoa)), nil
	case "float":
		return validator.Then(validator.Rule[string, float64](validator.ParseFloat), format(func(x float64) string {
			return strconv.FormatFloat(x, 'g', -1, 64)
		})), nil
	case "bool":
		return validator.Then(validator.Rule[string, bool](validator.ParseBool), format(strconv.FormatBool)), nil
	case "uuid":
		return func(s string) (string, error) {
			id, err := validator.ParseUUID(s)
			if err != nil {
				return "", err
			}
			return id.String(), nil
		}, nil
	case "file":
		return validator.FileExists(ctx, a.prober), nil
	case "dir":
		return validator.DirExists(ctx, a.prober), nil
	default:
		return nil, fmt.Errorf("unknown item kind %q", kind)
	}
}

func format[T any](fn func(T) string) validator.Rule[T, string] {
	return func(v T) (string, error) {
		return fn(v), nil
	}
}

func runChoice(_ context.Context, a *app, args []string) ([]string, error) {
	fs := a.flagSet("choice")
	desc := fs.String("desc", "Invalid choice", "description used in the error message")
	allowed := fs.String("allowed", "", "comma-separated allowed values")
	mapping := fs.String("map", "", "comma-separated key=value pairs; the value is printed")
	raw, err := a.require(fs, args)
	if err != nil {
		return nil, err
	}

	switch {
	case *mapping != "" && *allowed == "":
		table, err := parseMapping(*mapping)
		if err != nil {
			fmt.Fprintf(a.stderr, "choice: %v\n", err)
			return nil, errUsage
		}
		v, err := cliopt.ValidateKey(raw, table, *desc)
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	case *allowed != "" && *mapping == "":
		if err := cliopt.ValidateMember(raw, strings.Split(*allowed, ","), *desc); err != nil {
			return nil, err
		}
		return []string{raw}, nil
	default:
		fmt.Fprintln(a.stderr, "choice: exactly one of -allowed or -map is required")
		return nil, errUsage
	}
}

func parseMapping(s string) (map[string]string, error) {
	table := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid mapping entry %q", pair)
		}
		table[k] = v
	}
	return table, nil
}

func runUUID(_ context.Context, a *app, args []string) ([]string, error) {
	fs := a.flagSet("uuid")
	desc := fs.String("desc", "Invalid UUID", "description used in the error message")
	raw, err := a.require(fs, args)
	if err != nil {
		return nil, err
	}

	id, err := cliopt.ValidateUUID(raw, *desc)
	if err != nil {
		return nil, err
	}
	return []string{id.String()}, nil
}
