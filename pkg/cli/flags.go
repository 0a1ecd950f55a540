/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/easysh/easysh/pkg/config"
	"github.com/easysh/easysh/pkg/serializer"
)

const configFlagUsage = `Path/URI to the scaffold configuration (JSON or YAML).
	Supports: file paths, HTTP/HTTPS URLs, or "-" for stdin.`

// Flags are built per command; urfave flags keep parse state.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

func configFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Required: required,
		Usage:    configFlagUsage,
	}
}

// parseOutputFormat returns the --format value or an error when it is not
// one of the supported formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)", f, serializer.SupportedFormats())
	}
	return f, nil
}

// loadConfig reads and validates a configuration from a file, URL or stdin.
func loadConfig(ctx context.Context, location string) (*config.Config, error) {
	slog.Debug("loading configuration", "source", location)

	data, err := serializer.ReadSource(ctx, location, serializer.NewHTTPReader())
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration from %q: %w", location, err)
	}

	cfg, err := config.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration in %q: %w", location, err)
	}
	return cfg, nil
}

// writeOutput serializes data with the given format to path or stdout.
func writeOutput(ctx context.Context, format serializer.Format, path string, data any) error {
	ser, err := serializer.NewFileWriterOrStdout(format, path)
	if err != nil {
		return err
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, data)
}
