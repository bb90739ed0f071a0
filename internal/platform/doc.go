// Package platform holds the OS-dependent filesystem helpers: resolving an
// application's config path against the user's home directory (POSIX roots
// and Windows drive letters) and setting permission bits, which is a no-op
// on Windows.
package platform
