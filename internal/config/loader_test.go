package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/innerlens/innerlens/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DefaultLocale, convey.ShouldEqual, "en")
				convey.So(cfg.StoreBackend, convey.ShouldEqual, config.StoreBackendMemory)
				convey.So(cfg.GeneratorTimeoutMS, convey.ShouldEqual, 20_000)
				convey.So(cfg.SessionTTLMinutes, convey.ShouldEqual, 1_440)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("INNERLENS_ADDR", ":8080")
			_ = os.Setenv("INNERLENS_DEFAULT_LOCALE", "zh")
			_ = os.Setenv("INNERLENS_GENERATOR_BASE_URL", "https://api.example.com/v1")
			_ = os.Setenv("INNERLENS_GENERATOR_TIMEOUT_MS", "5000")
			_ = os.Setenv("INNERLENS_MAX_CONCURRENT_GENERATIONS", "4")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultLocale, convey.ShouldEqual, "zh")
				convey.So(cfg.GeneratorBaseURL, convey.ShouldEqual, "https://api.example.com/v1")
				convey.So(cfg.GeneratorTimeoutMS, convey.ShouldEqual, 5000)
				convey.So(cfg.MaxConcurrentGenerations, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
default_locale: zh
generator_model: test-model
generator_timeout_ms: 8000
store_backend: redis
redis_addr: "localhost:6390"
session_ttl_minutes: 60
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INNERLENS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DefaultLocale, convey.ShouldEqual, "zh")
				convey.So(cfg.GeneratorModel, convey.ShouldEqual, "test-model")
				convey.So(cfg.GeneratorTimeoutMS, convey.ShouldEqual, 8000)
				convey.So(cfg.StoreBackend, convey.ShouldEqual, config.StoreBackendRedis)
				convey.So(cfg.RedisAddr, convey.ShouldEqual, "localhost:6390")
				convey.So(cfg.SessionTTLMinutes, convey.ShouldEqual, 60)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
generator_model: file-model
session_ttl_minutes: 60
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INNERLENS_CONFIG", tmpFile)
			_ = os.Setenv("INNERLENS_ADDR", ":8080")                // This should override the file
			_ = os.Setenv("INNERLENS_GENERATOR_MODEL", "env-model") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")                 // Overridden by env
				convey.So(cfg.GeneratorModel, convey.ShouldEqual, "env-model")   // Overridden by env
				convey.So(cfg.SessionTTLMinutes, convey.ShouldEqual, 60)         // From file
				convey.So(cfg.GeneratorTimeoutMS, convey.ShouldEqual, 20_000)    // From defaults
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INNERLENS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("INNERLENS_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("INNERLENS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown store backend", func() {
			_ = os.Setenv("INNERLENS_STORE_BACKEND", "cassandra")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading the redis backend without an address", func() {
			_ = os.Setenv("INNERLENS_STORE_BACKEND", "redis")
			_ = os.Setenv("INNERLENS_REDIS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			yamlContent := `
addr: ":9090"
max_concurrent_generations: 4
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INNERLENS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")                      // From file
				convey.So(cfg.MaxConcurrentGenerations, convey.ShouldEqual, 4)        // From file
				convey.So(cfg.DefaultLocale, convey.ShouldEqual, "en")                // From defaults
				convey.So(cfg.GeneratorTimeoutMS, convey.ShouldEqual, 20_000)         // From defaults
				convey.So(cfg.StoreBackend, convey.ShouldEqual, config.StoreBackendMemory) // From defaults
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("INNERLENS_GENERATOR_TIMEOUT_MS", "invalid")
			_ = os.Setenv("INNERLENS_MAX_CONCURRENT_GENERATIONS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestConfigLoaderEdgeCases(t *testing.T) {
	convey.Convey("Given config loader edge cases", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with a zero generator timeout", func() {
			_ = os.Setenv("INNERLENS_GENERATOR_TIMEOUT_MS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a negative session TTL", func() {
			_ = os.Setenv("INNERLENS_SESSION_TTL_MINUTES", "-5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a zero session TTL", func() {
			_ = os.Setenv("INNERLENS_SESSION_TTL_MINUTES", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then expiry should be disabled without error", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.SessionTTLMinutes, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When loading config with special characters in addr", func() {
			_ = os.Setenv("INNERLENS_ADDR", "[::1]:8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should handle various addr formats", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, "[::1]:8080")
			})
		})

		convey.Convey("When loading config with YAML file containing comments", func() {
			yamlContent := `
# This is a comment
addr: ":9090"  # Inline comment
default_locale: zh
# Another comment
session_shard_count: 4
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("INNERLENS_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should parse YAML with comments", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DefaultLocale, convey.ShouldEqual, "zh")
				convey.So(cfg.SessionShardCount, convey.ShouldEqual, 4)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"INNERLENS_CONFIG",
		"INNERLENS_ADDR",
		"INNERLENS_DEFAULT_LOCALE",
		"INNERLENS_GENERATOR_BASE_URL",
		"INNERLENS_GENERATOR_API_KEY",
		"INNERLENS_GENERATOR_MODEL",
		"INNERLENS_GENERATOR_TIMEOUT_MS",
		"INNERLENS_MAX_CONCURRENT_GENERATIONS",
		"INNERLENS_STORE_BACKEND",
		"INNERLENS_REDIS_ADDR",
		"INNERLENS_SESSION_TTL_MINUTES",
		"INNERLENS_SESSION_SHARD_COUNT",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "innerlens-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
