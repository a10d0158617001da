// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports (Repository, Preferences) are implemented by the application
// and adapter layers and consumed by the screen state holders and the CLI.
// Client ports (ListerAPI, ListerConnector) are implemented by the outbound
// REST adapter and called by the repository.
package ports
