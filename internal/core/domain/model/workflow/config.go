package workflow

// Config is the process-wide workflow policy, set at startup and read-only
// thereafter.
type Config struct {
	// AutoAdvance lets the lifecycle service immediately attempt an outgoing
	// automatic edge after a successful commit, instead of waiting for an
	// external trigger.
	AutoAdvance bool

	// RequireApproval keeps the created -> pending_approval edge manual.
	// When false the edge is declared automatic at graph construction.
	RequireApproval bool

	// NotifyOnTransition enables fire-and-forget status-change notifications.
	NotifyOnTransition bool

	// LogAllChanges enables an info-level log line per applied transition.
	// Audit entries are written regardless.
	LogAllChanges bool
}
