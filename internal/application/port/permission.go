package port

import "context"

// PermissionProvider reports the capabilities the host environment has granted.
type PermissionProvider interface {
	// GrantedPermissions returns permission names such as "tabs" or "history".
	GrantedPermissions(ctx context.Context) ([]string, error)
}
