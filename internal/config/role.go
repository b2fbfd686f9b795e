package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultRoleTitle names the untailored resume
const DefaultRoleTitle = "General"

// RoleConfig describes one target role. It is read from a JSON or YAML file.
type RoleConfig struct {
	RoleTitle         string   `json:"role_title" yaml:"role_title" validate:"required"`
	SummaryType       string   `json:"summary_type,omitempty" yaml:"summary_type,omitempty"`
	ProjectIDs        []string `json:"project_ids,omitempty" yaml:"project_ids,omitempty" validate:"dive,required"`
	Company           string   `json:"company,omitempty" yaml:"company,omitempty"`
	JobDescription    string   `json:"job_description,omitempty" yaml:"job_description,omitempty"`
	JobFile           string   `json:"job_file,omitempty" yaml:"job_file,omitempty"`
	Requirements      []string `json:"requirements,omitempty" yaml:"requirements,omitempty" validate:"dive,required"`
	KeyResponsibility string   `json:"key_responsibility,omitempty" yaml:"key_responsibility,omitempty"`
	Styles            []string `json:"styles,omitempty" yaml:"styles,omitempty" validate:"dive,oneof=enthusiastic professional achievement"`
	MaxSkills         int      `json:"max_skills,omitempty" yaml:"max_skills,omitempty" validate:"gte=0"`

	// Path is the file the config was read from
	Path string `json:"-" yaml:"-"`
}

var roleValidator = validator.New()

// Validate checks the struct tags and that only one job description source is set
func (r *RoleConfig) Validate() error {
	if err := roleValidator.Struct(r); err != nil {
		return fmt.Errorf("role config error: %w", err)
	}
	if r.JobDescription != "" && r.JobFile != "" {
		return fmt.Errorf("role config error: 'job_description' and 'job_file' are mutually exclusive")
	}
	return nil
}

// Slug is the role title as used in output file names
func (r *RoleConfig) Slug() string {
	title := strings.TrimSpace(r.RoleTitle)
	if title == "" {
		title = DefaultRoleTitle
	}
	return strings.Join(strings.Fields(title), "_")
}

// ResolveJobFile returns JobFile relative to the directory of the role config
func (r *RoleConfig) ResolveJobFile() string {
	if r.JobFile == "" || filepath.IsAbs(r.JobFile) || r.Path == "" {
		return r.JobFile
	}
	return filepath.Join(filepath.Dir(r.Path), r.JobFile)
}

// IsRoleConfigFile reports whether a file name has a role config extension
func IsRoleConfigFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadRoleConfig reads and validates a role config. The format follows the file extension.
func LoadRoleConfig(path string) (*RoleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role config %s: %w", path, err)
	}

	var role RoleConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &role)
	case ".json":
		err = json.Unmarshal(data, &role)
	default:
		return nil, fmt.Errorf("unsupported role config format: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse role config %s: %w", path, err)
	}

	role.Path = path
	if err := role.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &role, nil
}

// LoadRoleConfigs reads every role config in a directory in file name order.
// A missing directory yields no roles. Two roles whose titles map to the same output file
// name, or a role named like the general resume, are rejected.
func LoadRoleConfigs(dir string) ([]*RoleConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read roles directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && IsRoleConfigFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	roles := make([]*RoleConfig, 0, len(names))
	claimed := map[string]string{
		strings.ToLower(DefaultRoleTitle): "the general resume",
	}
	for _, name := range names {
		role, err := LoadRoleConfig(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		// output files are named by slug, compared case-insensitively
		key := strings.ToLower(role.Slug())
		if owner, ok := claimed[key]; ok {
			return nil, fmt.Errorf("%s: role title %q has the same output name %q as %s", role.Path, role.RoleTitle, role.Slug(), owner)
		}
		claimed[key] = role.Path
		roles = append(roles, role)
	}
	return roles, nil
}
