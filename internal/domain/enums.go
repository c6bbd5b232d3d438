package domain

// UserRole represents the account type of a user.
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleSinger   UserRole = "singer"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCustomer, UserRoleSinger, UserRoleAdmin:
		return true
	}
	return false
}

// APIKeyStatus is the lifecycle state of an API key. Only active keys verify.
type APIKeyStatus string

const (
	APIKeyStatusActive    APIKeyStatus = "active"
	APIKeyStatusRevoked   APIKeyStatus = "revoked"
	APIKeyStatusExpired   APIKeyStatus = "expired"
	APIKeyStatusSuspended APIKeyStatus = "suspended"
)

func (s APIKeyStatus) String() string { return string(s) }

func (s APIKeyStatus) IsValid() bool {
	switch s {
	case APIKeyStatusActive, APIKeyStatusRevoked, APIKeyStatusExpired, APIKeyStatusSuspended:
		return true
	}
	return false
}

// ResourceType names a tenant-owned resource for ownership checks.
type ResourceType string

const (
	ResourceVenue  ResourceType = "venue"
	ResourceSystem ResourceType = "system"
	ResourceSong   ResourceType = "song"
	ResourceAPIKey ResourceType = "api_key"
)

func (r ResourceType) String() string { return string(r) }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeVenue   EntityType = "VENUE"
	EntityTypeSystem  EntityType = "SYSTEM"
	EntityTypeAPIKey  EntityType = "API_KEY"
	EntityTypeCatalog EntityType = "CATALOG"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeVenue, EntityTypeSystem, EntityTypeAPIKey, EntityTypeCatalog:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionRevoke AuditAction = "REVOKE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionRevoke:
		return true
	}
	return false
}

// RequestEventType names a live request feed event.
type RequestEventType string

const (
	RequestCreated RequestEventType = "request_created"
	RequestUpdated RequestEventType = "request_updated"
	RequestDeleted RequestEventType = "request_deleted"
)
