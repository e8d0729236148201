// Package host adapts the embedding environment.
package host

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/tinyguard/internal/application/port"
)

// StaticPermissions reports a configured set of granted permissions. Set
// replaces the set when the config file changes.
type StaticPermissions struct {
	mu      sync.RWMutex
	granted []string
}

// NewStaticPermissions copies granted.
func NewStaticPermissions(granted []string) *StaticPermissions {
	return &StaticPermissions{granted: slices.Clone(granted)}
}

// Set replaces the granted permissions.
func (p *StaticPermissions) Set(granted []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.granted = slices.Clone(granted)
}

// GrantedPermissions returns a copy of the configured permissions.
func (p *StaticPermissions) GrantedPermissions(_ context.Context) ([]string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.granted == nil {
		return []string{}, nil
	}
	return slices.Clone(p.granted), nil
}

var _ port.PermissionProvider = (*StaticPermissions)(nil)
