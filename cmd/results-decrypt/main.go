package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goodnatureofminers/walletsweep/internal/store"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const passwordEnv = "WALLETSWEEP_PASSWORD"

type config struct {
	Input string `long:"input" env:"WALLETSWEEP_OUTPUT" description:"encrypted results file" default:"walletsweep-results.enc"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(cfg); err != nil {
		logger.Fatal("results-decrypt failed", zap.Error(err), zap.String("input", cfg.Input))
	}
}

func run(cfg config) error {
	password, err := readPassword()
	if err != nil {
		return err
	}
	plaintext, err := store.Decrypt(cfg.Input, password)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, plaintext, "", "  "); err != nil {
		return fmt.Errorf("format results: %w", err)
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(os.Stdout)
	return err
}

func readPassword() ([]byte, error) {
	if v := strings.TrimSpace(os.Getenv(passwordEnv)); v != "" {
		return []byte(v), nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s not set and stdin is not a terminal", passwordEnv)
	}
	fmt.Fprint(os.Stderr, "Results password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return []byte(strings.TrimSpace(string(raw))), nil
}
