package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/atlas/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"ATLAS_CONFIG",
		"ATLAS_ADDR",
		"ATLAS_LOG_LEVEL",
		"ATLAS_SCORES_PATH",
		"ATLAS_GEOMETRY_PATH",
		"ATLAS_EVENTS_PATH",
		"ATLAS_DEFAULT_YEAR",
		"ATLAS_TRIGGER_QUEUE_SIZE",
		"ATLAS_COLOR_STEPS",
		"ATLAS_PRE_PERIOD_START",
		"ATLAS_PRE_PERIOD_END",
		"ATLAS_POST_PERIOD_START",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ScoresPath, convey.ShouldEqual, "data/scores.csv")
				convey.So(cfg.GeometryPath, convey.ShouldEqual, "data/world.geojson")
				convey.So(cfg.EventsPath, convey.ShouldEqual, "data/events.json")
				convey.So(cfg.DefaultYear, convey.ShouldEqual, 2024)
				convey.So(cfg.TriggerQueueSize, convey.ShouldEqual, 1024)
				convey.So(cfg.ColorSteps, convey.ShouldEqual, 9)
				convey.So(cfg.PrePeriodStart, convey.ShouldEqual, 2015)
				convey.So(cfg.PrePeriodEnd, convey.ShouldEqual, 2019)
				convey.So(cfg.PostPeriodStart, convey.ShouldEqual, 2020)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("ATLAS_ADDR", ":8080")
			_ = os.Setenv("ATLAS_DEFAULT_YEAR", "2021")
			_ = os.Setenv("ATLAS_TRIGGER_QUEUE_SIZE", "64")
			_ = os.Setenv("ATLAS_SCORES_PATH", "/srv/atlas/scores.csv")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultYear, convey.ShouldEqual, 2021)
				convey.So(cfg.TriggerQueueSize, convey.ShouldEqual, 64)
				convey.So(cfg.ScoresPath, convey.ShouldEqual, "/srv/atlas/scores.csv")
				// Untouched keys keep their defaults.
				convey.So(cfg.GeometryPath, convey.ShouldEqual, "data/world.geojson")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			doc := "addr: \":7070\"\ndefault_year: 2019\ncolor_steps: 5\n"
			convey.So(os.WriteFile(path, []byte(doc), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("ATLAS_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.DefaultYear, convey.ShouldEqual, 2019)
				convey.So(cfg.ColorSteps, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When env vars override the file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			convey.So(os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("ATLAS_CONFIG", path)
			_ = os.Setenv("ATLAS_ADDR", ":6060")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config file does not exist", func() {
			clearConfigEnvVars()
			_ = os.Setenv("ATLAS_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When validation fails", func() {
			clearConfigEnvVars()
			_ = os.Setenv("ATLAS_ADDR", "")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then the error is an invalid-config kind", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the pre period is inverted", func() {
			clearConfigEnvVars()
			_ = os.Setenv("ATLAS_PRE_PERIOD_START", "2020")
			_ = os.Setenv("ATLAS_PRE_PERIOD_END", "2015")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
