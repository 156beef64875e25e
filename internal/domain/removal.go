package domain

type RemovalKind string

const (
	RemovalGuest  RemovalKind = "guest"
	RemovalMember RemovalKind = "member"
)

// PendingRemoval is a destructive action waiting for its confirmation. Scope is
// the event id for guests and the host id for members.
type PendingRemoval struct {
	Kind    RemovalKind `json:"kind"`
	Scope   string      `json:"scope"`
	Subject string      `json:"subject"`
	ActorID string      `json:"actor_id"`
}

// RemovalResult tells the caller whether the removal already happened or
// needs to be confirmed with Token.
type RemovalResult struct {
	Removed bool   `json:"removed"`
	Token   string `json:"token,omitempty"`
}
