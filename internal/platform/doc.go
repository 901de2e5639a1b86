// Package platform reads and changes the attribute state of a single
// filesystem entry: whether it exists, whether it is a directory, and
// whether its owner-write permission bit is absent (read-only). On Unix
// systems it calls stat(2) and chmod(2) through golang.org/x/sys/unix. Other
// platforms go through the os package, which on Windows maps the read-only
// file attribute onto the owner-write bit.
//
// Every call re-reads the filesystem. Nothing is cached and no state is kept
// between calls, so operations on different paths may run concurrently.
package platform
