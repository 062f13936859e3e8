package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"reelcat/internal/catalog"
	"reelcat/internal/config"
	"reelcat/internal/logging"
	"reelcat/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withStore opens the configured catalog store for the duration of fn.
func (c *commandContext) withStore(fn func(*config.Config, catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, closer, err := store.Open(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	return fn(cfg, st)
}

func (c *commandContext) newMutator(cfg *config.Config, st catalog.Store) (*catalog.Mutator, error) {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return catalog.NewMutator(st,
		logger.With(slog.String(logging.FieldComponent, "mutator")),
		catalog.WithRetryAttempts(cfg.Mutation.ReassignRetryAttempts),
		catalog.WithRetryBackoff(
			time.Duration(cfg.Mutation.RetryBaseDelayMS)*time.Millisecond,
			time.Duration(cfg.Mutation.RetryMaxDelayMS)*time.Millisecond,
		),
	), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
