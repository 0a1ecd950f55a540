// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

// Part keys, in canonical generation order.
const (
	PartBackend  = "backend"
	PartFrontend = "frontend"
)

// Default values applied when a field is omitted.
const (
	DefaultBackendProjectName  = "backend"
	DefaultBackendDescription  = "A robust backend service."
	DefaultBackendVersion      = "0.1.0"
	DefaultDBHost              = "postgres"
	DefaultDBPort              = 5432
	DefaultDBName              = "app_db"
	DefaultDBUser              = "db_user"
	DefaultPgAdminEmail        = "admin@example.com"
	DefaultLogLevel            = "INFO"
	DefaultFrontendProjectName = "frontend"
)

// Config is the validated scaffold configuration.
type Config struct {
	Global   GlobalConfig   `json:"global" yaml:"global"`
	Backend  BackendConfig  `json:"backend" yaml:"backend"`
	Frontend FrontendConfig `json:"frontend" yaml:"frontend"`
}

// GlobalConfig holds settings shared by all parts.
type GlobalConfig struct {
	// ProjectName is the archive's top-level directory.
	ProjectName string `json:"projectName" yaml:"projectName"`
}

// BackendConfig configures the backend part.
type BackendConfig struct {
	Include            bool         `json:"include" yaml:"include"`
	ProjectName        string       `json:"projectName" yaml:"projectName"`
	ProjectDescription string       `json:"projectDescription" yaml:"projectDescription"`
	ProjectVersion     string       `json:"projectVersion" yaml:"projectVersion"`
	DBHost             string       `json:"dbHost" yaml:"dbHost"`
	DBPort             int          `json:"dbPort" yaml:"dbPort"`
	DBName             string       `json:"dbName" yaml:"dbName"`
	DBUser             string       `json:"dbUser" yaml:"dbUser"`
	DBPassword         string       `json:"dbPassword" yaml:"dbPassword"`
	PgAdminEmail       string       `json:"pgAdminEmail" yaml:"pgAdminEmail"`
	PgAdminPassword    string       `json:"pgAdminPassword" yaml:"pgAdminPassword"`
	Debug              bool         `json:"debug" yaml:"debug"`
	LogLevel           string       `json:"logLevel" yaml:"logLevel"`
	ModuleSystem       ModuleSystem `json:"moduleSystem" yaml:"moduleSystem"`
}

// FrontendConfig configures the frontend part.
type FrontendConfig struct {
	Include             bool         `json:"include" yaml:"include"`
	ProjectName         string       `json:"projectName" yaml:"projectName"`
	IncludeExamplePages bool         `json:"includeExamplePages" yaml:"includeExamplePages"`
	IncludeHusky        bool         `json:"includeHusky" yaml:"includeHusky"`
	ModuleSystem        ModuleSystem `json:"moduleSystem" yaml:"moduleSystem"`
}

// ModuleSystem is passed through to templates. Only its shape is validated.
type ModuleSystem struct {
	Include  bool      `json:"include" yaml:"include"`
	Modules  []Module  `json:"modules" yaml:"modules"`
	Features []Feature `json:"features" yaml:"features"`
}

// Module is a named application module with a permission descriptor.
type Module struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Permissions string `json:"permissions" yaml:"permissions"`
}

// Feature is a feature flag.
type Feature struct {
	ID string `json:"id" yaml:"id"`
}

// Part is the generation-relevant view of one part configuration.
type Part struct {
	// Name is the part key and the catalog partition it selects.
	Name        string
	Include     bool
	ProjectName string
}

// NewBackendConfig returns a backend configuration with all defaults applied.
func NewBackendConfig() BackendConfig {
	return BackendConfig{
		ProjectName:        DefaultBackendProjectName,
		ProjectDescription: DefaultBackendDescription,
		ProjectVersion:     DefaultBackendVersion,
		DBHost:             DefaultDBHost,
		DBPort:             DefaultDBPort,
		DBName:             DefaultDBName,
		DBUser:             DefaultDBUser,
		PgAdminEmail:       DefaultPgAdminEmail,
		LogLevel:           DefaultLogLevel,
		ModuleSystem:       NewModuleSystem(),
	}
}

// NewFrontendConfig returns a frontend configuration with all defaults applied.
func NewFrontendConfig() FrontendConfig {
	return FrontendConfig{
		ProjectName:  DefaultFrontendProjectName,
		ModuleSystem: NewModuleSystem(),
	}
}

// NewModuleSystem returns an empty, disabled module system.
func NewModuleSystem() ModuleSystem {
	return ModuleSystem{
		Modules:  []Module{},
		Features: []Feature{},
	}
}

// Parts returns the part configurations in canonical order.
func (c *Config) Parts() []Part {
	return []Part{
		{Name: PartBackend, Include: c.Backend.Include, ProjectName: c.Backend.ProjectName},
		{Name: PartFrontend, Include: c.Frontend.Include, ProjectName: c.Frontend.ProjectName},
	}
}

// PartNames lists the part keys in canonical order.
func PartNames() []string {
	return []string{PartBackend, PartFrontend}
}

// AnyIncluded reports whether at least one part is selected.
func (c *Config) AnyIncluded() bool {
	for _, p := range c.Parts() {
		if p.Include {
			return true
		}
	}
	return false
}

// Context re-exposes the configuration as a plain nested mapping keyed by
// wire field names.
func (c *Config) Context() map[string]any {
	return map[string]any{
		"global": map[string]any{
			"projectName": c.Global.ProjectName,
		},
		PartBackend: map[string]any{
			"include":            c.Backend.Include,
			"projectName":        c.Backend.ProjectName,
			"projectDescription": c.Backend.ProjectDescription,
			"projectVersion":     c.Backend.ProjectVersion,
			"dbHost":             c.Backend.DBHost,
			"dbPort":             c.Backend.DBPort,
			"dbName":             c.Backend.DBName,
			"dbUser":             c.Backend.DBUser,
			"dbPassword":         c.Backend.DBPassword,
			"pgAdminEmail":       c.Backend.PgAdminEmail,
			"pgAdminPassword":    c.Backend.PgAdminPassword,
			"debug":              c.Backend.Debug,
			"logLevel":           c.Backend.LogLevel,
			"moduleSystem":       c.Backend.ModuleSystem.context(),
		},
		PartFrontend: map[string]any{
			"include":             c.Frontend.Include,
			"projectName":         c.Frontend.ProjectName,
			"includeExamplePages": c.Frontend.IncludeExamplePages,
			"includeHusky":        c.Frontend.IncludeHusky,
			"moduleSystem":        c.Frontend.ModuleSystem.context(),
		},
	}
}

func (m ModuleSystem) context() map[string]any {
	modules := make([]any, 0, len(m.Modules))
	for _, mod := range m.Modules {
		modules = append(modules, map[string]any{
			"id":          mod.ID,
			"name":        mod.Name,
			"permissions": mod.Permissions,
		})
	}
	features := make([]any, 0, len(m.Features))
	for _, f := range m.Features {
		features = append(features, map[string]any{"id": f.ID})
	}
	return map[string]any{
		"include":  m.Include,
		"modules":  modules,
		"features": features,
	}
}
