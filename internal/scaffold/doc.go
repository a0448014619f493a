// Package scaffold creates the project directory skeleton and prints the
// manual setup checklist.
//
// Directory creation is idempotent: a directory that already exists is a
// success, and missing parents are created along the way. The first path
// that cannot be created stops the run with a *model.FilesystemError;
// directories created before it are left in place.
package scaffold
