// Package cli is the interactive shell of the DevHub client. It is a thin
// view layer: all authentication state lives in the session store and all
// remote data state lives in the fetch feeds; the shell only holds the open
// conversation and prompt plumbing.
package cli
