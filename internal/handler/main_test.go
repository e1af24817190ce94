package handler

import (
	"os"
	"testing"
	"time"

	"fritzoria/pkg/config"
	"fritzoria/pkg/jwtutil"
	"fritzoria/prometheus"
)

func TestMain(m *testing.M) {
	// Metrics and JWT state are package globals initialized by main; set
	// them up once for every handler test.
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg.Metrics.Prefix = "fritzoria_test"
	cfg.JWT = config.JWTConfig{SigningKey: "test-signing-key", ExpirationTime: time.Hour}

	prometheus.InitMetrics(cfg)
	jwtutil.Initialize(&cfg.JWT)

	os.Exit(m.Run())
}
