package domain

// Role is the closed set of user roles known to the service. Anything
// outside it maps to RoleUnknown, which holds no capabilities.
type Role string

const (
	RoleUnknown    Role = ""
	RoleAdmin      Role = "admin"
	RoleDispatcher Role = "dispatcher"
	RoleTechnician Role = "technician"
	RoleViewer     Role = "viewer"
)

func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleAdmin, RoleDispatcher, RoleTechnician, RoleViewer:
		return Role(value), true
	default:
		return RoleUnknown, false
	}
}

// NotifiesOnGeofence reports whether users holding this role receive
// geofence entry notifications.
func (r Role) NotifiesOnGeofence() bool {
	return r == RoleAdmin || r == RoleDispatcher
}

// CanLogMaintenance reports whether this role may write maintenance logs.
func (r Role) CanLogMaintenance() bool {
	return r == RoleTechnician
}

// NotifyRoles lists the roles eligible for geofence notifications.
func NotifyRoles() []Role {
	return []Role{RoleAdmin, RoleDispatcher}
}
