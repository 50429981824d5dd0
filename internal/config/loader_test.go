package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/rudraPratapSing-H/hackvento-evaluation-dashboard/internal/config"
)

// clearEnv blanks every knob Load reads so tests only see what they set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HACKVENTO_CONFIG", "HACKVENTO_LOG_LEVEL", "HACKVENTO_ADDR",
		"HACKVENTO_STORE_BACKEND", "HACKVENTO_SCORE_FILE", "HACKVENTO_POSTGRES_DSN",
		"HACKVENTO_SESSION_SECRET", "HACKVENTO_SESSION_TTL_MINUTES",
		"HACKVENTO_ADMIN_KEY", "HACKVENTO_ROSTER_CSV",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given only the required secrets in the environment", t, func() {
		clearEnv(t)
		t.Setenv("HACKVENTO_SESSION_SECRET", "shh")
		t.Setenv("HACKVENTO_ADMIN_KEY", "admin")

		Convey("Everything else falls back to defaults", func() {
			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8090")
			So(cfg.StoreBackend, ShouldEqual, config.BackendFile)
			So(cfg.ScoreFile, ShouldEqual, "scores.json")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.SessionTTLMinutes, ShouldEqual, 720)
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("HACKVENTO_ADDR", ":9999")
			t.Setenv("HACKVENTO_LOG_LEVEL", "debug")

			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9999")
			So(cfg.LogLevel, ShouldEqual, "debug")
		})

		Convey("A YAML file layers between defaults and env", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			So(os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: warn\n"), 0o644), ShouldBeNil)
			t.Setenv("HACKVENTO_CONFIG", path)

			Convey("File values beat defaults", func() {
				cfg, err := config.Load(ctx)
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "warn")
			})

			Convey("But env still beats the file", func() {
				t.Setenv("HACKVENTO_ADDR", ":6060")

				cfg, err := config.Load(ctx)
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.LogLevel, ShouldEqual, "warn")
			})
		})

		Convey("A missing config file is a load error", func() {
			t.Setenv("HACKVENTO_CONFIG", "/definitely/not/there.yaml")

			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrLoadConfig)
		})
	})

	Convey("Validation failures", t, func() {
		clearEnv(t)
		t.Setenv("HACKVENTO_SESSION_SECRET", "shh")
		t.Setenv("HACKVENTO_ADMIN_KEY", "admin")

		Convey("An unknown backend is rejected", func() {
			t.Setenv("HACKVENTO_STORE_BACKEND", "cassandra")

			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("The postgres backend requires a DSN", func() {
			t.Setenv("HACKVENTO_STORE_BACKEND", "postgres")

			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("A missing session secret is rejected", func() {
			os.Unsetenv("HACKVENTO_SESSION_SECRET")

			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})

		Convey("A missing admin key is rejected", func() {
			os.Unsetenv("HACKVENTO_ADMIN_KEY")

			_, err := config.Load(ctx)
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}
