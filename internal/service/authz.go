package service

import "github.com/jurnalresonansi/resonansi-api/models"

// canMutate reports whether the actor may mutate a resource owned by
// ownerID: owners and admins may, everyone else may not. The decision
// uses only the verified token claims.
func canMutate(actor models.Identity, ownerID string) bool {
	return actor.UserID == ownerID || actor.Role == models.RoleAdmin
}

// isAdmin reports whether the actor carries the admin role.
func isAdmin(actor models.Identity) bool {
	return actor.Role == models.RoleAdmin
}
