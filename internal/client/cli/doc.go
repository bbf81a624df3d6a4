// Package cli provides the interactive brandsync command-line client.
//
// It wires configuration, the local field store, the gRPC client, the sync
// coordinator and the connectivity monitor into an interactive REPL that
// supports online/offline operation. Typical flow: prompt for credentials,
// bind the field controllers, start the background connectivity probe and
// the periodic sync loop, and execute user commands.
//
// Key features:
//   - Register / Login / Logout (online with offline fallback)
//   - Edit / Show / Refresh brand fields with live sync status badges
//   - Manage the customer avatar list
//   - Upload / Download brand documents via presigned URLs
//   - Manual sync on demand
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
