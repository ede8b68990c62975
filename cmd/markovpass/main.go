package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vitalvas/markovpass"
	"github.com/vitalvas/markovpass/config"
	"github.com/vitalvas/markovpass/logger"
)

type cliConfig struct {
	Generate    markovpass.Options `yaml:"generate"`
	ShowEntropy bool               `yaml:"show_entropy"`
	Logger      logger.Config      `yaml:"logger"`
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fs := flag.NewFlagSet("markovpass", flag.ExitOnError)
	number := fs.Int("n", cfg.Generate.Number, "number of passphrases to generate")
	minEntropy := fs.Float64("e", cfg.Generate.MinEntropy, "minimum entropy per passphrase, in bits")
	ngramLength := fs.Int("l", cfg.Generate.NgramLength, "ngram length")
	minWordLength := fs.Int("w", cfg.Generate.MinWordLength, "minimum corpus word length")
	showEntropy := fs.Bool("show-entropy", cfg.ShowEntropy, "print the entropy of each passphrase")
	logLevel := fs.String("log-level", cfg.Logger.Level, "log level (debug, info, warn, error)")
	logType := fs.String("log-type", cfg.Logger.LogType, "log format (text, json)")
	fs.String("config", "", "config file path")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: markovpass [FILE]... [options]\n\n")
		fmt.Fprintf(fs.Output(), "Reads a text corpus from the given files, or stdin, and prints passphrases.\n\n")
		fs.PrintDefaults()
	}

	fs.Parse(os.Args[1:])

	log := logger.New(logger.Config{
		Level:   *logLevel,
		LogType: *logType,
	})

	if *ngramLength <= 1 {
		fmt.Fprintln(os.Stderr, "ngram length must be greater than one")
		fs.Usage()
		os.Exit(2)
	}

	reader, closeInput, err := openInput(fs.Args(), log)
	if err != nil {
		log.Error("failed to open corpus", "error", err)
		os.Exit(1)
	}
	defer closeInput()

	passphrases, err := markovpass.GenPassphrases(reader, markovpass.Options{
		Number:        *number,
		MinEntropy:    *minEntropy,
		NgramLength:   *ngramLength,
		MinWordLength: *minWordLength,
	})
	if err != nil {
		log.Error("failed to generate passphrases", "error", err)
		os.Exit(1)
	}

	for _, p := range passphrases {
		if *showEntropy {
			fmt.Printf("%s <%.2f>\n", p.Text, p.Entropy)
		} else {
			fmt.Println(p.Text)
		}
	}
}

func loadConfig(args []string) (*cliConfig, error) {
	var cfg cliConfig

	var files []string
	if explicit := configFileArg(args); explicit != "" {
		files = append(files, explicit)
	} else if dir, err := os.UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, "markovpass", "config.yml"))
	}

	if err := config.Load(&cfg, config.WithFiles(files...), config.WithEnv("markovpass")); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// configFileArg pre-scans the arguments for -config so the file can be
// loaded before flag defaults are built from it.
func configFileArg(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}

	return ""
}

// openInput returns a reader over the corpus files in order, or stdin
// when no file is named. A lone "-" also selects stdin.
func openInput(paths []string, log *slog.Logger) (io.Reader, func(), error) {
	if len(paths) == 0 || (len(paths) == 1 && paths[0] == "-") {
		if isTerminal(os.Stdin) {
			log.Warn("reading corpus from a terminal, pipe in a text file or press ctrl-d when done")
		}
		return os.Stdin, func() {}, nil
	}

	files := make([]*os.File, 0, len(paths))
	readers := make([]io.Reader, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			for _, open := range files {
				open.Close()
			}
			return nil, nil, err
		}

		files = append(files, f)
		readers = append(readers, bufio.NewReader(f))
	}

	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	return io.MultiReader(readers...), closeAll, nil
}
