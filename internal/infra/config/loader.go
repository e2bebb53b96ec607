package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/serieslab/internal/domain"
)

// Load reads the optional serieslab.yaml at path. A missing file yields
// DefaultConfig; a present but malformed or out-of-range file is an error.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapConfig(path, cfg, dto)
}

func mapConfig(path string, cfg domain.Config, dto YAMLConfig) (domain.Config, error) {
	if dto.Report.Iterations != nil {
		cfg.Report.Iterations = *dto.Report.Iterations
	}
	if dto.Save.Enabled != nil {
		cfg.Save.Enabled = *dto.Save.Enabled
	}
	if strings.TrimSpace(dto.Paths.RunsDir) != "" {
		cfg.Paths.RunsDir = strings.TrimSpace(dto.Paths.RunsDir)
	}

	if cfg.Report.Iterations < 1 || cfg.Report.Iterations > domain.MaxTerms {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err: fmt.Errorf("report.iterations must be in 1..%d, got %d: %w",
				domain.MaxTerms, cfg.Report.Iterations, domain.ErrInvalidConfig),
		}
	}

	return cfg, nil
}
