// FILE: internal/entity/actor_entity.go
package entity

import "github.com/google/uuid"

// AdminActor is the explicit authorization capability passed into
// admin-only lifecycle operations (approve, reject, delete). It is built
// from verified JWT claims by the transport layer, never re-queried from
// session state inside the domain.
type AdminActor struct {
	Id    uuid.UUID
	Email string
}

// OwnerRef identifies the authenticated submitter on client operations.
type OwnerRef struct {
	Id    uuid.UUID
	Email string
}
