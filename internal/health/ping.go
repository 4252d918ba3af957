package health

import "context"

// HealthPinger is implemented by store drivers to expose a connectivity
// check. HealthPing must return nil when the backend is reachable.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
