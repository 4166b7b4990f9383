package provision

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Plan is an immutable ordered list of provisioning steps.
// Steps run in strict declaration order; execution halts at the first failure.
type Plan struct {
	Name  string
	Steps []Step
}

// Built-in plan names.
const (
	PlanPlaywright = "playwright"
	PlanSystem     = "system"
)

// PlaywrightPlan installs the Playwright driver and a vendor-managed headless
// Chromium through the automation framework's own installer. Re-running on an
// already provisioned host is a no-op (the installer skips present binaries).
func PlaywrightPlan() Plan {
	return Plan{
		Name: PlanPlaywright,
		Steps: []Step{
			Func("install playwright chromium", func(ctx context.Context) error {
				return playwright.Install(&playwright.RunOptions{
					Browsers: []string{"chromium"},
				})
			}),
		},
	}
}

// SystemPlan installs an OS-packaged Chromium and its matching driver via the
// system package manager. It is the alternative to PlaywrightPlan for targets
// where the vendor download is unavailable.
func SystemPlan() Plan {
	return Plan{
		Name: PlanSystem,
		Steps: []Step{
			Command("update package index", "apt-get", "update"),
			Command("install chromium and driver", "apt-get", "install", "-y", "chromium", "chromium-driver"),
		},
	}
}

// BuiltinPlan resolves a built-in plan by name.
func BuiltinPlan(name string) (Plan, error) {
	switch name {
	case PlanPlaywright:
		return PlaywrightPlan(), nil
	case PlanSystem:
		return SystemPlan(), nil
	default:
		return Plan{}, fmt.Errorf("unknown provisioning plan: %q (want %q or %q)", name, PlanPlaywright, PlanSystem)
	}
}
