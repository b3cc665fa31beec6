// Package cli provides the interactive command-line front end of the notes
// client.
//
// A saved session is restored on start; otherwise the user logs in or signs
// up. When a session is established the notes, folders and tags are loaded
// once, after which commands list, filter, create, edit and delete notes.
// State lives in the workspace and the session store; this package only
// prompts and renders.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
