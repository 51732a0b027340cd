// Package driver orchestrates the lint pipeline: loading files,
// tokenizing, annotating, running the rule catalog and doc checks,
// applying fixes, and fanning work out across files. Commands call the
// driver; everything below it is per-file and side-effect free.
package driver
