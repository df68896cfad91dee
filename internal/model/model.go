package model

// Environment is the runtime environment of the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated caller's identity through use cases.
// Authentication itself happens in an upstream collaborator; by the time a
// request reaches a use case the identity is already verified.
type Scope struct {
	UserID string
}
