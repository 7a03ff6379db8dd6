package main

import (
	"context"
	"declension/sources/configuration"
	"declension/sources/declension"
	"declension/sources/dictionary"
	"declension/sources/external"
	"declension/sources/features"
	"declension/sources/metrics"
	"declension/sources/persistence"
	"declension/sources/platform"
	"declension/sources/texting/format"
	"declension/sources/throttler"
	"declension/sources/tracing"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

var (
	version   = "0.0.0"
	buildTime = "1970-01-01"
)

type SelectCmd struct {
	Number string   `arg:"" help:"Quantity to agree with, e.g. 21 or 2.5. Put negative numbers after --."`
	Forms  []string `arg:"" help:"The one, few and many forms, in that order."`
}

func (c *SelectCmd) Run(out io.Writer) error {
	number, err := format.ParseQuantity(c.Number)
	if err != nil {
		return err
	}

	form, err := format.SelectFormDecimal(number, c.Forms)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, form)
	return nil
}

type WordCmd struct {
	Number string `arg:"" help:"Quantity to agree with, e.g. 21 or 2.5. Put negative numbers after --."`
	Lemma  string `arg:"" help:"Dictionary word, see the words command."`
}

func (c *WordCmd) Run(out io.Writer, log *tracing.Logger) error {
	number, err := format.ParseQuantity(c.Number)
	if err != nil {
		return err
	}

	dict, err := loadDictionary(log)
	if err != nil {
		return err
	}

	forms, err := dict.Lookup(c.Lemma)
	if err != nil {
		return err
	}

	phrase, err := format.Countify(number, forms[:])
	if err != nil {
		return err
	}
	fmt.Fprintln(out, phrase)
	return nil
}

type WordsCmd struct{}

func (c *WordsCmd) Run(out io.Writer, log *tracing.Logger) error {
	dict, err := loadDictionary(log)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, strings.Join(dict.Lemmas(), "\n"))
	return nil
}

type RublesCmd struct {
	Amount string `arg:"" help:"Money amount, e.g. 5 or 3.99."`
}

func (c *RublesCmd) Run(out io.Writer) error {
	amount, err := format.ParseQuantity(c.Amount)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, format.Rublify(amount))
	return nil
}

type AgeCmd struct {
	CreatedAt string `arg:"" name:"created-at" help:"RFC 3339 timestamp, e.g. 2025-03-01T12:00:00Z."`
	Lang      string `default:"ru" help:"Language tag, non-Russian tags get English output."`
}

func (c *AgeCmd) Run(out io.Writer) error {
	createdAt, err := time.Parse(time.RFC3339, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("created-at must be an RFC 3339 timestamp: %w", err)
	}

	lang, err := language.Parse(c.Lang)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, format.Ageify(createdAt, time.Now(), lang))
	return nil
}

type ServeCmd struct{}

func (c *ServeCmd) Run() error {
	fx.New(
		tracing.Module,
		configuration.Module,
		metrics.Module,
		dictionary.Module,
		declension.Module,
		persistence.Module,
		features.Module,
		throttler.Module,
		external.Module,

		fx.Invoke(func(lc fx.Lifecycle, log *tracing.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.I("Declension service started successfully", "version", version, "build_time", buildTime)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.I("Declension service stopped", "version", version, "build_time", buildTime, "uptime", platform.GetAppUptime().String())
					return nil
				},
			})
		}),
	).Run()
	return nil
}

type Cli struct {
	Select SelectCmd `cmd:"" help:"Print the form that agrees with a number."`
	Word   WordCmd   `cmd:"" help:"Print a number with the agreeing form of a dictionary word."`
	Words  WordsCmd  `cmd:"" help:"List dictionary words."`
	Rubles RublesCmd `cmd:"" help:"Print a money amount in rubles."`
	Age    AgeCmd    `cmd:"" help:"Print how long ago a timestamp was."`
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API with health and metrics servers."`
}

func loadDictionary(log *tracing.Logger) (*dictionary.Dictionary, error) {
	config, err := configuration.NewYaml(log)
	if err != nil {
		return nil, err
	}
	return dictionary.NewDictionary(config, log)
}

func newParser(cli *Cli, out io.Writer, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name("declension"),
		kong.Description("Slavic plural form selection."),
		kong.UsageOnError(),
		kong.BindTo(out, (*io.Writer)(nil)),
		kong.Bind(tracing.NewDiscardLogger()),
	}, options...)...)
}

// execute parses args and runs the selected command. Failures go through the
// parser's exit hook with a non-zero code.
func execute(args []string, out io.Writer, options ...kong.Option) {
	var cli Cli
	parser, err := newParser(&cli, out, options...)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return
	}
	parser.FatalIfErrorf(ctx.Run())
}

func main() {
	platform.SetAppManifest(version, time.Now())
	execute(os.Args[1:], os.Stdout)
}
