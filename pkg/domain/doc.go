// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (scam reports,
// consolidated aggregates, provider configurations, lookup results and the
// security checklist) and are intentionally free of infrastructure concerns
// so they can be shared across packages.
package domain
