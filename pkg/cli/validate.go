/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/easysh/easysh/pkg/config"
	apperrors "github.com/easysh/easysh/pkg/errors"
	"github.com/easysh/easysh/pkg/header"
	ver "github.com/easysh/easysh/pkg/version"
)

var errNoPartsIncluded = apperrors.New(apperrors.ErrCodeNoPartsSelected,
	"configuration includes no part; set backend.include or frontend.include")

type partSummary struct {
	Name        string `json:"name" yaml:"name"`
	Include     bool   `json:"include" yaml:"include"`
	ProjectName string `json:"projectName" yaml:"projectName"`
}

// validationSummary reports what a valid configuration would generate.
type validationSummary struct {
	header.Header `json:",inline" yaml:",inline"`

	Source      string        `json:"source" yaml:"source"`
	ProjectName string        `json:"projectName" yaml:"projectName"`
	Archive     string        `json:"archive" yaml:"archive"`
	Parts       []partSummary `json:"parts" yaml:"parts"`
	Generates   bool          `json:"generates" yaml:"generates"`
	Warnings    []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// TableRows implements serializer.Tabular.
func (s *validationSummary) TableRows() ([]string, [][]string) {
	rows := make([][]string, 0, len(s.Parts))
	for _, p := range s.Parts {
		rows = append(rows, []string{p.Name, strconv.FormatBool(p.Include), p.ProjectName})
	}
	return []string{"PART", "INCLUDE", "PROJECT"}, rows
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a scaffold configuration",
		Description: `Parses and validates a scaffold configuration without rendering anything.

Checks performed:
  - global.projectName is present and usable as a directory name
  - every field has the expected type
  - included parts do not share a project name

Settings that are valid but likely unintended, such as a backend.projectVersion
that is not MAJOR.MINOR.PATCH, are reported as warnings.

A configuration with no included part is valid but generates nothing;
use --fail-on-empty to treat it as an error.

# Examples

  easysh validate --config easysh.yaml
  easysh validate -c https://example.com/easysh.json -t json`,
		Flags: []cli.Flag{
			configFlag(true),
			&cli.BoolFlag{
				Name:  "fail-on-empty",
				Usage: "Exit with non-zero status if no part is included",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			source := cmd.String("config")
			cfg, err := loadConfig(ctx, source)
			if err != nil {
				return err
			}

			summary := summarize(source, cfg)
			for _, w := range summary.Warnings {
				slog.Warn(w, "config", source)
			}
			slog.Info("configuration valid",
				"project", summary.ProjectName,
				"generates", summary.Generates,
				"warnings", len(summary.Warnings))

			if err := writeOutput(ctx, outFormat, cmd.String("output"), summary); err != nil {
				return err
			}

			if cmd.Bool("fail-on-empty") && !summary.Generates {
				return errNoPartsIncluded
			}
			return nil
		},
	}
}

func summarize(source string, cfg *config.Config) *validationSummary {
	s := &validationSummary{
		Header:      header.New(header.KindValidationSummary, version),
		Source:      source,
		ProjectName: cfg.Global.ProjectName,
		Archive:     cfg.Global.ProjectName + archiveExt,
		Generates:   cfg.AnyIncluded(),
	}
	for _, p := range cfg.Parts() {
		s.Parts = append(s.Parts, partSummary{Name: p.Name, Include: p.Include, ProjectName: p.ProjectName})
	}
	s.Warnings = lint(cfg)
	return s
}

// lint reports settings that are valid but likely unintended.
func lint(cfg *config.Config) []string {
	var warnings []string
	if cfg.Backend.Include {
		v, err := ver.ParseVersion(cfg.Backend.ProjectVersion)
		switch {
		case err != nil:
			warnings = append(warnings, fmt.Sprintf("backend.projectVersion %q is not a numeric version: %v",
				cfg.Backend.ProjectVersion, err))
		case !v.IsFull():
			warnings = append(warnings, fmt.Sprintf("backend.projectVersion %q should be MAJOR.MINOR.PATCH",
				cfg.Backend.ProjectVersion))
		}
	}
	if cfg.Frontend.Include && cfg.Frontend.ModuleSystem.Include && len(cfg.Frontend.ModuleSystem.Modules) == 0 {
		warnings = append(warnings, "frontend.moduleSystem.include is true but no modules are defined")
	}
	return warnings
}
