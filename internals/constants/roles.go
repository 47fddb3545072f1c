package constants

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
	RoleUser  = "user"
)
