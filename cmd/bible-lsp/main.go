// Command bible-lsp is a Language Server Protocol server for Scripture
// references in plain-text and markdown documents.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	bible "github.com/MasterTemple/bible-lsp"
	"github.com/MasterTemple/bible-lsp/lsp"
)

var (
	translationFlag = flag.String("translation", "", "Path to the translation dataset JSON (overrides config)")
	debugFlag       = flag.Bool("debug", false, "Enable debug logging")
	clientLogFlag   = flag.Bool("client-log", false, "Forward logs to the editor via window/logMessage")
)

func main() {
	flag.Parse()

	// Set up logging to stderr (stdout is for LSP communication)
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	if *debugFlag {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	defer func() {
		_ = logger.Sync()
	}()

	corpus, err := loadCorpus(logger, config.Level)
	if err != nil {
		logger.Fatal("Failed to load translation", zap.Error(err))
	}

	logger.Info("Starting bible-lsp server",
		zap.String("translation", corpus.Translation().Name))

	ctx := context.Background()

	err = run(ctx, logger, os.Stdin, os.Stdout, corpus)
	if err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}

// loadCorpus resolves the dataset path from the -translation flag or the
// nearest config file and loads it. A log_level in the config adjusts the
// shared level unless -debug already raised it.
func loadCorpus(logger *zap.Logger, level zap.AtomicLevel) (*bible.Corpus, error) {
	path := *translationFlag
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}

		cfg, err := bible.LoadConfig(wd)
		if err != nil {
			if errors.Is(err, bible.ErrConfigNotFound) {
				logger.Error("No translation configured",
					zap.String("hint", "pass -translation or add a .bible-lsp.yaml with a translation path"))
			}

			return nil, err
		}
		path = cfg.Translation

		if cfg.LogLevel != "" && !*debugFlag {
			lvl, err := zapcore.ParseLevel(cfg.LogLevel)
			if err != nil {
				logger.Warn("Ignoring invalid log_level in config", zap.String("log_level", cfg.LogLevel))
			} else {
				level.SetLevel(lvl)
			}
		}
	}

	return bible.LoadCorpus(path)
}

func run(ctx context.Context, logger *zap.Logger, in io.Reader, out io.Writer, corpus *bible.Corpus) error {
	// Create a JSON-RPC stream connection over stdio
	stream := jsonrpc2.NewStream(&readWriteCloser{in, out})
	conn := jsonrpc2.NewConn(stream)

	// Create a client to send notifications to the editor
	client := protocol.ClientDispatcher(conn, logger)

	if *clientLogFlag {
		logger = lsp.NewClientLogger(client, logger.Core(), zapcore.InfoLevel)
	}

	server := lsp.NewServer(client, logger, corpus)

	// Register the server handler with the connection
	conn.Go(ctx, protocol.ServerHandler(server, nil))

	// Wait for the connection to close
	<-conn.Done()

	return conn.Err()
}

// readWriteCloser wraps separate reader/writer into io.ReadWriteCloser.
type readWriteCloser struct {
	io.Reader
	io.Writer
}

func (rwc *readWriteCloser) Close() error {
	// Close writer if it's closeable
	if c, ok := rwc.Writer.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
