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

import (
	"fmt"
	"math"
	"strings"

	"github.com/easysh/easysh/pkg/defaults"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Decode parses a JSON or YAML document into a validated Config.
func Decode(data []byte) (*Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &ValidationError{Reason: "empty document"}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("malformed document: %v", err)}
	}
	return Parse(doc)
}

// Parse converts an untyped document into a validated Config.
// It has no side effects and does not retain doc.
func Parse(doc map[string]any) (*Config, error) {
	if doc == nil {
		return nil, invalid("global", "is required")
	}

	global, err := requiredObject(doc, "global", "global")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Backend:  NewBackendConfig(),
		Frontend: NewFrontendConfig(),
	}

	if cfg.Global.ProjectName, err = requiredString(global, "projectName", "global.projectName"); err != nil {
		return nil, err
	}
	if err := checkProjectName("global.projectName", cfg.Global.ProjectName); err != nil {
		return nil, err
	}

	if err := parseBackend(doc, &cfg.Backend); err != nil {
		return nil, err
	}
	if err := parseFrontend(doc, &cfg.Frontend); err != nil {
		return nil, err
	}

	if cfg.Backend.Include && cfg.Frontend.Include &&
		cfg.Backend.ProjectName == cfg.Frontend.ProjectName {
		return nil, invalid("frontend.projectName",
			"duplicates backend.projectName %q; included parts need distinct directories", cfg.Frontend.ProjectName)
	}

	return cfg, nil
}

func parseBackend(doc map[string]any, b *BackendConfig) error {
	m, ok, err := optionalObject(doc, PartBackend, PartBackend)
	if err != nil || !ok {
		return err
	}

	p := fieldParser{obj: m, prefix: PartBackend}
	p.boolean("include", &b.Include)
	p.projectName(&b.ProjectName)
	p.str("projectDescription", &b.ProjectDescription)
	p.str("projectVersion", &b.ProjectVersion)
	p.str("dbHost", &b.DBHost)
	p.integer("dbPort", &b.DBPort)
	p.str("dbName", &b.DBName)
	p.str("dbUser", &b.DBUser)
	p.nullableStr("dbPassword", &b.DBPassword)
	p.str("pgAdminEmail", &b.PgAdminEmail)
	p.nullableStr("pgAdminPassword", &b.PgAdminPassword)
	p.boolean("debug", &b.Debug)
	p.str("logLevel", &b.LogLevel)
	p.moduleSystem(&b.ModuleSystem)
	return p.err
}

func parseFrontend(doc map[string]any, f *FrontendConfig) error {
	m, ok, err := optionalObject(doc, PartFrontend, PartFrontend)
	if err != nil || !ok {
		return err
	}

	p := fieldParser{obj: m, prefix: PartFrontend}
	p.boolean("include", &f.Include)
	p.projectName(&f.ProjectName)
	p.boolean("includeExamplePages", &f.IncludeExamplePages)
	p.boolean("includeHusky", &f.IncludeHusky)
	p.moduleSystem(&f.ModuleSystem)
	return p.err
}

// fieldParser reads optional fields of one object, keeping the first error.
// Fields that are absent keep their current (default) value.
type fieldParser struct {
	obj    map[string]any
	prefix string
	err    error
}

func (p *fieldParser) path(key string) string {
	return p.prefix + "." + key
}

func (p *fieldParser) lookup(key string) (any, bool) {
	if p.err != nil {
		return nil, false
	}
	v, ok := p.obj[key]
	return v, ok
}

func (p *fieldParser) str(key string, dst *string) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	s, isStr := v.(string)
	if !isStr {
		p.err = invalid(p.path(key), "expected string, got %s", typeName(v))
		return
	}
	*dst = s
}

func (p *fieldParser) nullableStr(key string, dst *string) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	if v == nil {
		*dst = ""
		return
	}
	p.str(key, dst)
}

func (p *fieldParser) boolean(key string, dst *bool) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	b, isBool := v.(bool)
	if !isBool {
		p.err = invalid(p.path(key), "expected boolean, got %s", typeName(v))
		return
	}
	*dst = b
}

func (p *fieldParser) integer(key string, dst *int) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	n, err := toInt(v)
	if err != nil {
		p.err = invalid(p.path(key), "%v", err)
		return
	}
	*dst = n
}

func (p *fieldParser) projectName(dst *string) {
	p.str("projectName", dst)
	if p.err == nil {
		if err := checkPartProjectName(p.path("projectName"), *dst); err != nil {
			p.err = err
		}
	}
}

func (p *fieldParser) moduleSystem(dst *ModuleSystem) {
	if p.err != nil {
		return
	}
	path := p.path("moduleSystem")
	m, ok, err := optionalObject(p.obj, "moduleSystem", path)
	if err != nil {
		p.err = err
		return
	}
	if !ok {
		return
	}

	ms := fieldParser{obj: m, prefix: path}
	ms.boolean("include", &dst.Include)
	if ms.err != nil {
		p.err = ms.err
		return
	}

	if dst.Modules, err = parseModules(m, path+".modules"); err != nil {
		p.err = err
		return
	}
	if dst.Features, err = parseFeatures(m, path+".features"); err != nil {
		p.err = err
	}
}

func parseModules(parent map[string]any, path string) ([]Module, error) {
	items, err := optionalList(parent, "modules", path)
	if err != nil {
		return nil, err
	}

	modules := make([]Module, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		m, isMap := item.(map[string]any)
		if !isMap {
			return nil, invalid(itemPath, "expected object, got %s", typeName(item))
		}

		var mod Module
		if mod.ID, err = requiredString(m, "id", itemPath+".id"); err != nil {
			return nil, err
		}

		p := fieldParser{obj: m, prefix: itemPath}
		p.str("name", &mod.Name)
		p.nullableStr("permissions", &mod.Permissions)
		if p.err != nil {
			return nil, p.err
		}
		if mod.Name == "" {
			mod.Name = DisplayName(mod.ID)
		}
		modules = append(modules, mod)
	}
	return modules, nil
}

func parseFeatures(parent map[string]any, path string) ([]Feature, error) {
	items, err := optionalList(parent, "features", path)
	if err != nil {
		return nil, err
	}

	features := make([]Feature, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		m, isMap := item.(map[string]any)
		if !isMap {
			return nil, invalid(itemPath, "expected object, got %s", typeName(item))
		}
		id, err := requiredString(m, "id", itemPath+".id")
		if err != nil {
			return nil, err
		}
		features = append(features, Feature{ID: id})
	}
	return features, nil
}

// DisplayName derives a human readable module name from its id,
// e.g. "user-management" becomes "User Management".
func DisplayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// checkPartProjectName additionally rejects names of files written at the
// archive root, since part directories live next to them.
func checkPartProjectName(field, name string) error {
	if err := checkProjectName(field, name); err != nil {
		return err
	}
	if defaults.IsReservedRootName(name) {
		return invalid(field, "must not be %q, which is reserved for a generated file", name)
	}
	return nil
}

// checkProjectName rejects names that cannot be used as a single archive
// path segment.
func checkProjectName(field, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return invalid(field, "must not be empty")
	case name == "." || name == "..":
		return invalid(field, "must not be %q", name)
	case strings.ContainsAny(name, "/\\"):
		return invalid(field, "must not contain path separators")
	case strings.Contains(name, ".."):
		return invalid(field, "must not contain \"..\"")
	}
	return nil
}

func requiredObject(parent map[string]any, key, path string) (map[string]any, error) {
	m, ok, err := optionalObject(parent, key, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalid(path, "is required")
	}
	return m, nil
}

// optionalObject returns the nested object at key. A missing key or an
// explicit null reports ok=false so the caller keeps its defaults.
func optionalObject(parent map[string]any, key, path string) (map[string]any, bool, error) {
	v, ok := parent[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	m, isMap := v.(map[string]any)
	if !isMap {
		return nil, false, invalid(path, "expected object, got %s", typeName(v))
	}
	return m, true, nil
}

func optionalList(parent map[string]any, key, path string) ([]any, error) {
	v, ok := parent[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, isList := v.([]any)
	if !isList {
		return nil, invalid(path, "expected list, got %s", typeName(v))
	}
	return items, nil
}

func requiredString(parent map[string]any, key, path string) (string, error) {
	v, ok := parent[key]
	if !ok || v == nil {
		return "", invalid(path, "is required")
	}
	s, isStr := v.(string)
	if !isStr {
		return "", invalid(path, "expected string, got %s", typeName(v))
	}
	if s == "" {
		return "", invalid(path, "must not be empty")
	}
	return s, nil
}

// toInt accepts the integer representations produced by YAML and JSON
// decoders. Floats are accepted only when they have no fractional part.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("integer %d out of range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("expected integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %s", typeName(v))
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int32, int64, uint64, float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
