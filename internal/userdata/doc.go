// Package userdata manages the per-user files of shortcuts: the home
// directory that application config paths are resolved against, the config
// directory holding the registry and settings, first-run initialization,
// and the doctor health checks over the registry.
package userdata
