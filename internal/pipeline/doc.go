// Package pipeline is the boundary between the shortcut core and whatever
// presents it. It loads the registry once, lists application names, and
// renders one application per call (resolve path, extract, render). It
// also maps failures to the stage message shown in front of them.
package pipeline
