// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/shopping, domain/settings,
// domain/suggest). This root package holds the sentinel errors that classify
// every failure a remote call can produce, plus the validation error type.
package domain
