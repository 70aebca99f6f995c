package shared

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_ADDR", "REDIS_DB", "INGEST_WORKERS", "INGEST_PROPERTY_IDS",
		"CACHE_TTL_SECONDS", "GRID_MODE", "QA_HOOKS"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppEnv != "prod" || c.HTTPAddr != ":8080" || c.Workers != 8 || c.CacheTTL != 15*time.Minute {
		t.Fatalf("defaults: %+v", c)
	}
	if c.GridMode != "static" || c.QAHooks || c.PropertyIDs != nil {
		t.Fatalf("fragment defaults: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REDIS_DB", "3")
	t.Setenv("INGEST_WORKERS", "0")
	t.Setenv("INGEST_PROPERTY_IDS", " 12, ,x,-4,1641879 ")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("GRID_MODE", "fluid")
	t.Setenv("QA_HOOKS", "true")

	c := Load()
	if c.RedisDB != 3 || c.Workers != 1 || c.CacheTTL != time.Minute || c.GridMode != "fluid" || !c.QAHooks {
		t.Fatalf("overrides: %+v", c)
	}
	if diff := cmp.Diff([]int64{12, 1641879}, c.PropertyIDs); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
}
