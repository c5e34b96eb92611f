package modules

import (
	"testing"

	module "github.com/louisbranch/crowdfund/internal/services/web/module"
)

func TestDefaultModulesOrder(t *testing.T) {
	t.Parallel()

	all := Default(Dependencies{})
	if len(all) != 2 {
		t.Fatalf("module count = %d, want %d", len(all), 2)
	}
	if got := all[0].ID(); got != "public" {
		t.Fatalf("module[0] id = %q, want %q", got, "public")
	}
	if got := all[1].ID(); got != "campaigns" {
		t.Fatalf("module[1] id = %q, want %q", got, "campaigns")
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	seen := map[string]struct{}{}
	for _, m := range Default(Dependencies{}) {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("module %q mount error = %v", m.ID(), err)
		}
		if mount.Prefix == "" || mount.Handler == nil {
			t.Fatalf("module %q mount = %+v", m.ID(), mount)
		}
		if _, ok := seen[mount.Prefix]; ok {
			t.Fatalf("duplicate mount prefix %q", mount.Prefix)
		}
		seen[mount.Prefix] = struct{}{}
	}
}

func TestCampaignsModuleReportsHealthFromGateway(t *testing.T) {
	t.Parallel()

	for _, m := range Default(Dependencies{}) {
		reporter, ok := m.(module.HealthReporter)
		if !ok {
			continue
		}
		if reporter.Healthy() {
			t.Fatalf("module %q healthy without a gateway", m.ID())
		}
	}
}
