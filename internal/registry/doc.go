// Package registry provides a read-only view over the host's list of
// installed modules.
//
// The host owns the list: it hands the registry a snapshot provider, and the
// registry only ever queries the most recent snapshot. Nothing here mutates
// module state, and nothing here is told how or when the host refreshes its
// list. Module identifiers compare case-insensitively, and duplicate entries
// for the same identifier are tolerated.
package registry
