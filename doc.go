// Package login implements the authentication and session lifecycle core
// of a login microservice backed by a graph-structured identity store.
//
// Flow:
//   - Verifier checks a nickname/password pair against the users graph and
//     transparently activates never-logged-in accounts on their first
//     successful login (first login doubles as the password-set step).
//   - SessionManager keeps at most one live session per account by reaping
//     prior sessions before inserting a new one, and resolves and tears
//     down sessions keyed by the caller supplied session identifier.
//   - RoleResolver snapshots the account roles into the session at login
//     time; sessions never re-resolve roles on lookup.
//
// All state lives in the external SPARQL store, reached through the store
// gateways with a privileged (sudo) client. Nothing is cached in process.
package login
