// Command sqlfault inspects diagnostic payloads and classifies database
// error messages.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
)

// Global carries state shared by all subcommands.
type Global struct {
	Out    io.Writer
	Logger *slog.Logger
}

// CLI is the root command.
type CLI struct {
	LogLevel string `help:"Log level: debug, info, warn, error" default:"info" enum:"debug,info,warn,error" env:"SQLFAULT_LOG_LEVEL"`

	List     ListCmd     `cmd:"" help:"List stored diagnostic payloads"`
	Show     ShowCmd     `cmd:"" help:"Print a stored diagnostic payload"`
	Classify ClassifyCmd `cmd:"" help:"Classify a database error message"`
}

// AfterApply sets up logging once flags are parsed.
func (c *CLI) AfterApply(g *Global) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	g.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.Logger)
	return nil
}

func run(args []string, out io.Writer) error {
	var cli CLI
	g := &Global{Out: out, Logger: slog.Default()}

	parser, err := kong.New(&cli,
		kong.Name("sqlfault"),
		kong.Description("Inspect diagnostic payloads and classify database errors."),
		kong.UsageOnError(),
		kong.Bind(g),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("sqlfault failed", "error", err)
		os.Exit(1)
	}
}
