package config_test

import (
	"runtime"
	"testing"

	"github.com/innerlens/innerlens/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.DefaultLocale, convey.ShouldEqual, "en")
			convey.So(cfg.GeneratorBaseURL, convey.ShouldBeEmpty)
			convey.So(cfg.GeneratorTimeoutMS, convey.ShouldEqual, 20_000)
			convey.So(cfg.MaxConcurrentGenerations, convey.ShouldEqual, runtime.NumCPU()*2)
			convey.So(cfg.StoreBackend, convey.ShouldEqual, config.StoreBackendMemory)
			convey.So(cfg.SessionTTLMinutes, convey.ShouldEqual, 1_440)
			convey.So(cfg.SessionShardCount, convey.ShouldEqual, 8)
		})
	})
}
