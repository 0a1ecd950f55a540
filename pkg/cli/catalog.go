/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/easysh/easysh/pkg/catalog"
	"github.com/easysh/easysh/pkg/config"
	"github.com/easysh/easysh/pkg/header"
	"github.com/easysh/easysh/pkg/pathmap"
)

// catalogEntry is one template and the archive path it renders to.
type catalogEntry struct {
	Partition   string `json:"partition" yaml:"partition"`
	Template    string `json:"template" yaml:"template"`
	ArchivePath string `json:"archivePath" yaml:"archivePath"`
}

// catalogListing is the output of the catalog command.
type catalogListing struct {
	header.Header `json:",inline" yaml:",inline"`

	ProjectName string         `json:"projectName" yaml:"projectName"`
	Partitions  []string       `json:"partitions" yaml:"partitions"`
	Entries     []catalogEntry `json:"entries" yaml:"entries"`
}

// TableRows implements serializer.Tabular.
func (l *catalogListing) TableRows() ([]string, [][]string) {
	rows := make([][]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		partition := e.Partition
		if partition == "" {
			partition = "-"
		}
		rows = append(rows, []string{partition, e.Template, e.ArchivePath})
	}
	return []string{"PARTITION", "TEMPLATE", "ARCHIVE PATH"}, rows
}

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "List the template catalog and the archive path of every template",
		Description: `Lists every template in the built-in catalog, grouped by partition, with the
path it occupies inside the generated archive.

Project names come from --config when given; otherwise the defaults are used
with the root project name "` + defaultCatalogProject + `".

# Examples

  easysh catalog --format table
  easysh catalog -c easysh.yaml -t json -o catalog.json`,
		Flags: []cli.Flag{
			configFlag(false),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg := defaultCatalogConfig()
			if loc := cmd.String("config"); loc != "" {
				if cfg, err = loadConfig(ctx, loc); err != nil {
					return err
				}
			}

			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("failed to load template catalog: %w", err)
			}

			listing, err := listCatalog(cat, cfg)
			if err != nil {
				return err
			}

			return writeOutput(ctx, outFormat, cmd.String("output"), listing)
		},
	}
}

const defaultCatalogProject = "project"

func defaultCatalogConfig() *config.Config {
	return &config.Config{
		Global:   config.GlobalConfig{ProjectName: defaultCatalogProject},
		Backend:  config.NewBackendConfig(),
		Frontend: config.NewFrontendConfig(),
	}
}

// listCatalog maps every catalog entry with the project names of cfg.
// Inclusion flags are ignored so the whole catalog is listed.
func listCatalog(cat *catalog.Catalog, cfg *config.Config) (*catalogListing, error) {
	root := cfg.Global.ProjectName
	listing := &catalogListing{
		Header:      header.New(header.KindCatalogListing, version),
		ProjectName: root,
		Partitions:  cat.Partitions(),
	}

	projects := make(map[string]string, len(cfg.Parts()))
	for _, p := range cfg.Parts() {
		projects[p.Name] = p.ProjectName
	}

	for _, partition := range listing.Partitions {
		for e := range cat.Entries(partition) {
			p, err := pathmap.MapEntry(e, root, projects[partition])
			if err != nil {
				return nil, fmt.Errorf("failed to map template %s: %w", e.LogicalPath, err)
			}
			listing.Entries = append(listing.Entries, catalogEntry{
				Partition:   partition,
				Template:    e.LogicalPath,
				ArchivePath: p,
			})
		}
	}

	setup := cat.SetupScript()
	listing.Entries = append(listing.Entries, catalogEntry{
		Template:    setup.LogicalPath,
		ArchivePath: pathmap.SetupScript(root),
	})

	return listing, nil
}
