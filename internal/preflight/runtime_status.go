package preflight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"memorylane/internal/client"
	"memorylane/internal/config"
)

// CheckHost reports whether a memorylane host answers on the configured
// address.
func CheckHost(ctx context.Context, cfg *config.Config) Result {
	const name = "Host"
	if cfg == nil {
		return Result{Name: name, Detail: "Unknown"}
	}
	c, err := client.New(cfg.Paths.APIBind, cfg.Paths.APIToken)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status, err := c.Status(checkCtx)
	if err != nil {
		if errors.Is(err, client.ErrAPIUnavailable) {
			return Result{Name: name, Detail: "Not running"}
		}
		return Result{Name: name, Detail: err.Error()}
	}
	detail := fmt.Sprintf("Running (pid %d, %s backend)", status.PID, status.Backend)
	if status.Uptime != "" {
		detail += ", up " + status.Uptime
	}
	return Result{Name: name, Passed: status.Running, Detail: detail}
}
