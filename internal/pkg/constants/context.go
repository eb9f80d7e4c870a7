package constants

// Echo context keys set by the auth and request-id middlewares
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)

// RoleCustomer is the only role issued by the users service
const RoleCustomer = "customer"
