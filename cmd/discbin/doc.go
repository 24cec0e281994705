// Package main hosts the discbin CLI entrypoint and command graph.
//
// The Cobra-based command tree covers catalog inspection and editing, account
// seeding, configuration scaffolding, database health checks, and running the
// API server in the foreground. Commands open the store directly; the HTTP
// API is for browser clients, not for this tool.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
