// Package fetch provides the HTTP GET collaborator used by the discovery
// and locator packages. It treats any non-200 response as a hard transport
// failure; retries, caching, and proxying are outside its scope.
package fetch
