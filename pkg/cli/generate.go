/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/easysh/easysh/pkg/archive"
	"github.com/easysh/easysh/pkg/catalog"
	"github.com/easysh/easysh/pkg/defaults"
	"github.com/easysh/easysh/pkg/oci"
	"github.com/easysh/easysh/pkg/serializer"
)

const (
	defaultOCITag = "latest"
	archiveExt    = ".zip"
)

// generateCmdOptions holds parsed options for the generate command.
type generateCmdOptions struct {
	configPath  string
	output      string
	target      *oci.Reference
	checksums   bool
	concurrency int
	plainHTTP   bool
	insecureTLS bool
}

// parseGenerateCmdOptions parses and validates command options.
func parseGenerateCmdOptions(cmd *cli.Command) (*generateCmdOptions, error) {
	opts := &generateCmdOptions{
		configPath:  cmd.String("config"),
		output:      cmd.String("output"),
		checksums:   cmd.Bool("checksums"),
		concurrency: int(cmd.Int("concurrency")),
		plainHTTP:   cmd.Bool("plain-http"),
		insecureTLS: cmd.Bool("insecure-tls"),
	}

	if opts.concurrency < 1 {
		return nil, fmt.Errorf("--concurrency must be at least 1, got %d", opts.concurrency)
	}

	target, err := oci.ParseOutputTarget(opts.output)
	if err != nil {
		return nil, fmt.Errorf("invalid --output: %w", err)
	}
	if !target.IsOCI && (opts.plainHTTP || opts.insecureTLS) {
		return nil, fmt.Errorf("--plain-http and --insecure-tls require an %s output", oci.URIScheme)
	}
	if target.IsOCI && target.Tag == "" {
		target = target.WithTag(defaultOCITag)
	}
	opts.target = target

	return opts, nil
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate a project scaffold archive from a configuration",
		Description: `Renders the template catalog with the given configuration and packages the
result as <projectName>.zip.

# Archive Layout

  <projectName>/setup_environment.sh
  <projectName>/<backend.projectName>/...    (when backend.include is true)
  <projectName>/<frontend.projectName>/...   (when frontend.include is true)

# Examples

Write demo.zip into the current directory:
  easysh generate --config easysh.yaml

Write to a specific file:
  easysh generate -c easysh.yaml -o ./out/scaffold.zip

Read the configuration from stdin and add a checksum manifest:
  cat easysh.json | easysh generate -c - --checksums

Push the archive to an OCI registry:
  easysh generate -c easysh.yaml -o oci://ghcr.io/acme/scaffolds:v1

Push to a local registry without TLS:
  easysh generate -c easysh.yaml -o oci://localhost:5000/scaffolds:dev --plain-http`,
		Flags: []cli.Flag{
			configFlag(true),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   ".",
				Usage: `Output directory, .zip file path, or OCI reference (oci://registry/repository[:tag]).
	OCI references without a tag use "` + defaultOCITag + `".`,
			},
			&cli.BoolFlag{
				Name:  "checksums",
				Usage: "Add <projectName>/" + archive.ChecksumFileName + " with the SHA256 of every file",
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Value:   defaults.GenerateConcurrency,
				Usage:   "Number of templates rendered in parallel",
				Sources: cli.EnvVars("EASYSH_CONCURRENCY"),
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the OCI registry (for local development)",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the OCI registry",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseGenerateCmdOptions(cmd)
			if err != nil {
				return err
			}
			return runGenerate(ctx, cmd.Root().Writer, opts)
		},
	}
}

func runGenerate(ctx context.Context, w io.Writer, opts *generateCmdOptions) error {
	cfg, err := loadConfig(ctx, opts.configPath)
	if err != nil {
		return err
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load template catalog: %w", err)
	}

	b, err := archive.New(cat,
		archive.WithConcurrency(opts.concurrency),
		archive.WithChecksums(opts.checksums),
	)
	if err != nil {
		return fmt.Errorf("failed to create archive builder: %w", err)
	}
	if err := b.Preload(); err != nil {
		return fmt.Errorf("failed to preload templates: %w", err)
	}

	slog.Info("generating scaffold",
		"project", cfg.Global.ProjectName,
		"config", opts.configPath,
		"output", opts.target.String(),
	)

	buildCtx, cancel := context.WithTimeout(ctx, defaults.CLIGenerateTimeout)
	defer cancel()

	res, err := b.Build(buildCtx, cfg)
	if err != nil {
		return fmt.Errorf("scaffold generation failed: %w", err)
	}

	slog.Info("scaffold generated",
		"files", len(res.Entries),
		"size_bytes", res.Size(),
		"duration_sec", res.Duration.Seconds(),
	)

	if opts.target.IsOCI {
		return pushArchive(ctx, w, res, opts)
	}

	dest := archiveDestination(opts.target.LocalPath, res.Filename)
	if err := serializer.WriteToFile(dest, res.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	fmt.Fprintf(w, "Scaffold written to %s (%d files, %d bytes)\n", dest, len(res.Entries), res.Size())
	return nil
}

// archiveDestination resolves the file the archive is written to: output
// itself when it names a .zip file, otherwise filename inside output.
func archiveDestination(output, filename string) string {
	if output == "" {
		output = "."
	}
	if strings.EqualFold(filepath.Ext(output), archiveExt) {
		return output
	}
	return filepath.Join(output, filename)
}

func pushArchive(ctx context.Context, w io.Writer, res *archive.Result, opts *generateCmdOptions) error {
	slog.Info("pushing scaffold to OCI registry",
		"registry", opts.target.Registry,
		"repository", opts.target.Repository,
		"tag", opts.target.Tag,
	)

	pushCtx, cancel := context.WithTimeout(ctx, defaults.CLIPushTimeout)
	defer cancel()

	pushed, err := oci.Push(pushCtx, res.Data, oci.PushOptions{
		Reference:   opts.target,
		Filename:    res.Filename,
		Version:     version,
		PlainHTTP:   opts.plainHTTP,
		InsecureTLS: opts.insecureTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to push scaffold to registry: %w", err)
	}

	slog.Info("scaffold pushed", "reference", pushed.Reference, "digest", pushed.Digest)
	fmt.Fprintf(w, "Scaffold pushed to %s@%s\n", pushed.Reference, pushed.Digest)
	return nil
}
