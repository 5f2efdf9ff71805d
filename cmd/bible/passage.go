package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	bible "github.com/MasterTemple/bible-lsp"
)

func passageCommand() *cli.Command {
	return &cli.Command{
		Name:      "passage",
		Aliases:   []string{"p"},
		Usage:     "Print the text of a reference",
		ArgsUsage: "<reference>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quote",
				Aliases: []string{"q"},
				Usage:   "print as a one-line quotation",
			},
		},
		Action: runPassage,
	}
}

func runPassage(_ context.Context, cmd *cli.Command) error {
	corpus, err := loadCorpus(cmd)
	if err != nil {
		return err
	}

	input := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(input) == "" {
		return ErrNoReference
	}

	refs := bible.FindReferences(corpus, input)
	if len(refs) == 0 {
		return fmt.Errorf("%w: %q", ErrBadReference, input)
	}
	ref := refs[0]

	if cmd.Bool("quote") {
		fmt.Println(ref.ReplaceText(corpus))

		return nil
	}

	fmt.Printf("%s\n\n%s\n", ref.Label(corpus), ref.ContentBlock(corpus))

	return nil
}
