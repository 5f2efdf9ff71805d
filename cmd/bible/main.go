// Command bible is a companion CLI for the bible-lsp server: it scans
// files for Scripture references and prints passages from the configured
// translation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	bible "github.com/MasterTemple/bible-lsp"
)

// CLI errors.
var (
	ErrNoTranslation = errors.New("no translation dataset (use --translation or a .bible-lsp.yaml)")
	ErrNoReference   = errors.New("no reference given")
	ErrBadReference  = errors.New("not a recognizable reference")
)

func main() {
	cmd := &cli.Command{
		Name:  "bible",
		Usage: "Scripture reference tools",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "translation",
				Aliases: []string{"t"},
				Usage:   "path to the translation dataset JSON (overrides config)",
				Sources: cli.EnvVars("BIBLE_TRANSLATION"),
			},
		},
		Commands: []*cli.Command{
			refsCommand(),
			passageCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadCorpus loads the dataset named by the --translation flag, falling
// back to the nearest config file above the working directory.
func loadCorpus(cmd *cli.Command) (*bible.Corpus, error) {
	path := cmd.String("translation")
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}

		cfg, err := bible.LoadConfig(wd)
		if err != nil {
			if errors.Is(err, bible.ErrConfigNotFound) {
				return nil, ErrNoTranslation
			}

			return nil, err
		}
		path = cfg.Translation
	}

	return bible.LoadCorpus(path)
}
