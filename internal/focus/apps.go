package focus

import (
	"context"
	"fmt"
	"strings"

	"github.com/automac-mcp/automac/internal/apperr"
	"github.com/automac-mcp/automac/internal/model"
	"github.com/automac-mcp/automac/internal/script"
)

var availableAppsScript = script.SystemEvents("get name of (processes where background only is false)")

// AvailableApps lists the names of running processes that are not
// background-only.
func (c *Controller) AvailableApps(ctx context.Context) model.AppsResult {
	out, err := c.scripts.Run(ctx, availableAppsScript)
	if err != nil {
		return model.AppsResult{
			Result: model.Failure("Failed to get apps: "+apperr.Detail(err), err),
			Apps:   []string{},
		}
	}
	apps := SplitList(out)
	return model.AppsResult{
		Result: model.OK(fmt.Sprintf("Found %d applications", len(apps))),
		Apps:   apps,
	}
}

// SplitList splits an AppleScript list rendered as "a, b, c".
func SplitList(out string) []string {
	apps := []string{}
	if strings.TrimSpace(out) == "" {
		return apps
	}
	for _, name := range strings.Split(out, ", ") {
		if name = strings.TrimSpace(name); name != "" {
			apps = append(apps, name)
		}
	}
	return apps
}
