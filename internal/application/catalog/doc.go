// Package catalog implements the three core services of the storefront:
// products, recommendations and reviews. Each service validates its input,
// persists through a repository, and stamps reads with the address of the
// instance that served them.
package catalog
