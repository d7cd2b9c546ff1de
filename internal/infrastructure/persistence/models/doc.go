// Package models contains the GORM persistence models of the core services.
// They are separate from the domain entities so that the domain stays free of
// ORM tags, surrogate keys and version columns.
//
// Each core service owns exactly one table:
//   - products (product-service)
//   - recommendations (recommendation-service)
//   - reviews (review-service)
//
// Index names match the SQL migrations so that AutoMigrate on sqlite and the
// migrated postgres schema agree.
package models
