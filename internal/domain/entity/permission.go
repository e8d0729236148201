package entity

// Permission names reported by the host environment that lower the score.
const (
	PermissionClipboardRead  = "clipboardRead"
	PermissionClipboardWrite = "clipboardWrite"
	PermissionTabs           = "tabs"
	PermissionHistory        = "history"
	PermissionBookmarks      = "bookmarks"
)

// DefaultRiskyPermissions returns the sensitive capabilities penalized by the score.
func DefaultRiskyPermissions() []string {
	return []string{
		PermissionClipboardRead,
		PermissionClipboardWrite,
		PermissionTabs,
		PermissionHistory,
		PermissionBookmarks,
	}
}

// FilterRiskyPermissions keeps the granted permissions that appear in risky,
// deduplicated and in granted order.
func FilterRiskyPermissions(granted, risky []string) []string {
	riskySet := make(map[string]struct{}, len(risky))
	for _, p := range risky {
		riskySet[p] = struct{}{}
	}

	out := make([]string, 0, len(granted))
	seen := make(map[string]struct{}, len(granted))
	for _, p := range granted {
		if _, ok := riskySet[p]; !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
