/*
Package session implements session management and persistence orchestration.

A Manager loads a persisted record, resumes it as a jornada.Session, applies
an operation and saves the result, all while holding a per-session lock. Hosts
serving many users (HTTP, MCP) use it so that concurrent requests for the same
session never interleave their read-modify-write cycles.
*/
package session
