// Package sparql is a minimal SPARQL 1.1 protocol client used by the
// login service store gateways. It covers the two operations the service
// needs, SELECT queries and updates, and the literal/URI quoting helpers
// that make dynamically built patterns injection safe.
package sparql
