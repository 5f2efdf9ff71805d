package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/boyter/gocodewalker"
	"github.com/urfave/cli/v3"

	bible "github.com/MasterTemple/bible-lsp"
)

func refsCommand() *cli.Command {
	return &cli.Command{
		Name:      "refs",
		Usage:     "List Scripture references found in files",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "ext",
				Aliases: []string{"e"},
				Usage:   "file extensions to scan in directories",
				Value:   []string{"md", "txt"},
			},
			&cli.BoolFlag{
				Name:    "verse",
				Aliases: []string{"v"},
				Usage:   "print the first verse of each reference",
			},
		},
		Action: runRefs,
	}
}

func runRefs(_ context.Context, cmd *cli.Command) error {
	corpus, err := loadCorpus(cmd)
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectFiles(args, cmd.StringSlice("ext"))
	if err != nil {
		return err
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		for _, ref := range bible.FindReferences(corpus, string(data)) {
			fmt.Printf("%s:%d:%d: %s\n",
				path, ref.Span.Start.Line+1, ref.Span.Start.Character+1, ref.Label(corpus))

			if cmd.Bool("verse") {
				if text, ok := ref.DiagnosticText(corpus); ok {
					fmt.Printf("    %s\n", text)
				}
			}
		}
	}

	return nil
}

// collectFiles expands the arguments into a file list: directories are
// walked (respecting .gitignore) and filtered by extension, plain files
// are taken as given.
func collectFiles(args, extensions []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			if err := walkDir(arg, extensions, func(path string) {
				files = append(files, path)
			}); err != nil {
				return nil, err
			}

			continue
		}
		files = append(files, arg)
	}

	return files, nil
}

// walkDir walks a directory for matching files, respecting .gitignore.
func walkDir(root string, extensions []string, callback func(path string)) error {
	fileListQueue := make(chan *gocodewalker.File, 100)

	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	for _, ext := range extensions {
		fileWalker.AllowListExtensions = append(fileWalker.AllowListExtensions, strings.TrimPrefix(ext, "."))
	}

	var walkErr error
	fileWalker.SetErrorHandler(func(e error) bool {
		walkErr = e

		return true
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for f := range fileListQueue {
			callback(f.Location)
		}
	}()

	if err := fileWalker.Start(); err != nil {
		return err
	}

	wg.Wait()

	return walkErr
}
