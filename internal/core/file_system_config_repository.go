package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"iostream/internal/core/domain"
	"iostream/internal/ports"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var configFilePath = filepath.Join("~", ".iostream-config.yaml")
var currentContextPath = filepath.Join("~", ".iostream", "current-context")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
	LoadCurrentConfigurationContext() (*domain.ConfigurationContext, error)
	LoadCurrentContextName() (string, error)
	SaveCurrentContextName(string) error
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(
	fileService ports.FileSystem,
) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileService: fileService,
	}
}

// CreateTemplatingValues builds the values script arguments are rendered
// against: the current context's vars and its name.
func CreateTemplatingValues(configRepository ConfigRepository) (map[string]interface{}, error) {
	configContext, err := configRepository.LoadCurrentConfigurationContext()
	if err != nil {
		return nil, err
	}

	vars := make(map[string]string, len(configContext.Vars))
	for key, value := range configContext.Vars {
		vars[key] = value
	}
	values := map[string]interface{}{
		"Vars":    vars,
		"Context": configContext.Name,
	}
	return values, nil
}

func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	// Read the config file
	data, err := c.fileService.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	// Parse the YAML
	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}

	for i := range config.Contexts {
		context := &config.Contexts[i]
		if context.Import != nil {
			// Import paths are user-specified and may point anywhere on the filesystem.
			// The restricted FileSystem only covers ~/.iostream/, so os.ReadFile is used here.
			importPath := expandImportPath(*context.Import, home)
			data, err := os.ReadFile(importPath)
			if err != nil {
				Logger().Warn("failed to read import file", zap.String("path", importPath), zap.Error(err))
			} else {
				var baseContextConfig domain.ConfigurationContext
				if err := yaml.Unmarshal(data, &baseContextConfig); err != nil {
					Logger().Warn("failed to parse import file", zap.String("path", importPath), zap.Error(err))
				} else {
					config.Contexts[i] = mergeConfigurationContexts(baseContextConfig, *context)
				}
			}
		}

		if context.Backend.Type == "" {
			context.Backend.Type = domain.BackendOS
		}
		if context.Backend.Root != "" {
			context.Backend.Root = expandImportPath(context.Backend.Root, home)
		}
	}

	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config

	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	return c.fileService.WriteFile(configFilePath, data, ports.ReadWrite)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(configFilePath)
}

func (c *FileSystemConfigRepository) LoadCurrentContextName() (string, error) {
	data, err := c.fileService.ReadFile(currentContextPath)
	if err != nil {
		return "", fmt.Errorf("failed to read current context file: %v", err)
	}
	contextName := strings.TrimSpace(string(data))
	if err := validateContextName(contextName); err != nil {
		return "", fmt.Errorf("invalid context name in current-context file: %w", err)
	}
	return contextName, nil
}

func (c *FileSystemConfigRepository) SaveCurrentContextName(currentContextName string) error {
	if err := validateContextName(currentContextName); err != nil {
		return fmt.Errorf("invalid context name: %w", err)
	}
	return c.fileService.WriteFile(currentContextPath, []byte(currentContextName), ports.ReadWrite)
}

// expandImportPath expands ~ to the home directory for paths outside the
// restricted FileSystem.
func expandImportPath(path string, home string) string {
	// Handle both Unix (~/) and Windows (~\) tilde paths
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		return home
	}
	return path
}

// validateContextName checks that a context name doesn't contain path traversal characters.
func validateContextName(name string) error {
	if name == "" {
		return fmt.Errorf("context name cannot be empty")
	}
	if strings.Contains(name, "..") ||
		strings.Contains(name, "/") ||
		strings.Contains(name, "\\") ||
		strings.Contains(name, "\x00") {
		return fmt.Errorf("context name contains invalid characters")
	}
	return nil
}

func (c *FileSystemConfigRepository) LoadCurrentConfigurationContext() (*domain.ConfigurationContext, error) {
	currentContextName, err := c.LoadCurrentContextName()
	if err != nil {
		return nil, err
	}

	config, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}

	for _, context := range config.Contexts {
		if context.Name == currentContextName {
			return &context, nil
		}
	}

	return nil, fmt.Errorf("current context '%s' not found in config", currentContextName)
}

func (c *FileSystemConfigRepository) InitConfig() error {
	fileExists, err := c.fileService.FileExists(configFilePath)
	if err != nil {
		return err
	}
	if fileExists {
		return fmt.Errorf("configuration file already exists at %s", configFilePath)
	}

	config := domain.CreateDefaultConfig()
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	return c.fileService.WriteFile(configFilePath, data, ports.ReadWrite)
}

func mergeConfigurationContexts(
	base domain.ConfigurationContext, overlay domain.ConfigurationContext,
) domain.ConfigurationContext {
	if overlay.Name != "" {
		base.Name = overlay.Name
	}
	base.Import = overlay.Import

	if overlay.Backend.Type != "" {
		base.Backend.Type = overlay.Backend.Type
	}
	if overlay.Backend.Root != "" {
		base.Backend.Root = overlay.Backend.Root
	}

	if overlay.Vars != nil {
		if base.Vars == nil {
			base.Vars = make(map[string]string)
		}
		for key, value := range overlay.Vars {
			base.Vars[key] = value
		}
	}

	if overlay.Scripts != nil {
		if base.Scripts == nil {
			base.Scripts = make(map[string]domain.Script)
		}

		// Add or override scripts from overlay
		for name, script := range overlay.Scripts {
			base.Scripts[name] = script
		}
	}

	return base
}
