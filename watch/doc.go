// Package watch re-runs a function whenever a file is saved.
//
// Editors (and Tiled) often save by writing a temporary file and renaming it
// over the original, which replaces the watched inode. The Watcher therefore
// watches the file's parent directory and filters events by name. Runs are
// sequential. Events whose file modification time matches the one left by the
// previous run are dropped, so fn may save the watched file itself.
package watch
