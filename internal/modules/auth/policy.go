package auth

import "github.com/georgemunganga/retail/internal/modules/user"

// Managed is anything owned by a single manager account.
type Managed interface {
	ManagedBy() int64
}

func IsManager(u *user.User) bool { return u.IsManager() }

func IsAdmin(u *user.User) bool { return u.IsAdmin() }

// CanManage gates the manager menu: managers and admins.
func CanManage(u *user.User) bool { return IsManager(u) || IsAdmin(u) }

// CanManageStore is true iff actor is an admin or the store's manager.
func CanManageStore(actor *user.User, store Managed) bool {
	if actor == nil || store == nil {
		return false
	}
	if IsAdmin(actor) {
		return true
	}
	return store.ManagedBy() == actor.ID
}

// CanEditUser allows admins only. target may be nil for listing.
func CanEditUser(actor, _ *user.User) bool { return IsAdmin(actor) }
