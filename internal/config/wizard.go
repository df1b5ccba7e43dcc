package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectContentSource looks for a manifest under the usual locations and
// returns the directory that contains it.
func detectContentSource(manifestPath string) string {
	for _, dir := range []string{".", "public", "static", "site"} {
		if _, err := os.Stat(path.Join(dir, manifestPath)); err == nil {
			return dir
		}
	}
	return "."
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome to abxnav! Let's configure your guide.")
	fmt.Println()

	defaults := DefaultConfig()

	manifestPrompt := promptui.Prompt{
		Label:   "Manifest path (relative to the content source)",
		Default: defaults.ManifestPath,
	}
	manifestPath, err := manifestPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("manifest path: %w", err)
	}

	detected := detectContentSource(manifestPath)
	if detected != "." {
		fmt.Printf("Found %s under %s\n\n", manifestPath, detected)
	}

	sourcePrompt := promptui.Prompt{
		Label:   "Content source (directory or http(s) URL)",
		Default: detected,
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}

	localePrompt := promptui.Select{
		Label: "Select interface language",
		Items: []string{"ja - 日本語", "en - English"},
	}
	localeIdx, _, err := localePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locale selection: %w", err)
	}
	locale := []string{"ja", "en"}[localeIdx]

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("port must be a number between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static export",
		Default: defaults.Export.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	excludePrompt := promptui.Prompt{
		Label:   "Extra export exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	cfg := defaults
	cfg.ContentSource = source
	cfg.ManifestPath = manifestPath
	cfg.Locale = locale
	cfg.Port = port
	cfg.Export.OutputDir = outputDir
	cfg.Export.Exclude = append(append([]string(nil), DefaultExcludes...), splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, token := range strings.Split(s, ",") {
		if token = strings.TrimSpace(token); token != "" {
			result = append(result, token)
		}
	}
	return result
}
