package model

import "strings"

// WatchOp is a set of filesystem operations reported by the watcher.
type WatchOp uint8

// Watch operations.
const (
	OpCreate WatchOp = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Has reports whether o shares any operation with op.
func (o WatchOp) Has(op WatchOp) bool {
	return o&op != 0
}

func (o WatchOp) String() string {
	var parts []string

	for _, named := range []struct {
		op   WatchOp
		name string
	}{
		{OpCreate, "create"},
		{OpWrite, "write"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{OpChmod, "chmod"},
	} {
		if o.Has(named.op) {
			parts = append(parts, named.name)
		}
	}

	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// WatchEvent is a single change reported for an absolute path.
type WatchEvent struct {
	Path string
	Op   WatchOp
}
