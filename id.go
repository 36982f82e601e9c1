package gui

import (
	"encoding/binary"
	"hash/fnv"
)

// ID identifies a widget for pointer capture.
// IDs are stable across frames for the same label under the same ID stack.
//
// Labels used for capture identity must be unique within one window per
// frame. Two widgets sharing a label share an ID and cannot be told apart;
// use PushID/PopID to scope repeated labels.
type ID uint64

// GetID derives a stable ID from a label, scoped by the current ID stack.
// The result is never 0, which is reserved for "no widget".
func (ctx *Context) GetID(label string) ID {
	id := hashLabel(ctx.CurrentID(), label)
	ctx.trackID(id, label)
	return id
}

// hashLabel is FNV-1a over the parent ID followed by the label.
func hashLabel(parent ID, label string) ID {
	h := fnv.New64a()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	h.Write(buf[:])
	h.Write([]byte(label))

	id := ID(h.Sum64())
	if id == 0 {
		id = 1
	}
	return id
}

// GetIDFromInt derives an ID from an integer under the current ID stack.
// Useful for sub-parts of composite widgets.
func (ctx *Context) GetIDFromInt(n int) ID {
	h := fnv.New64a()

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(ctx.CurrentID()))
	binary.LittleEndian.PutUint64(buf[8:], uint64(n))
	h.Write(buf[:])

	id := ID(h.Sum64())
	if id == 0 {
		id = 1
	}
	return id
}

// PushID pushes an ID onto the stack for nested widgets.
// All GetID calls will be relative to this parent ID.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt pushes an integer-based ID onto the stack.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDFromInt(n))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// trackID records the ID for duplicate detection when verbose logging is on.
func (ctx *Context) trackID(id ID, label string) {
	if !guiVerbose() || ctx.seenIDs == nil {
		return
	}
	if prev, ok := ctx.seenIDs[id]; ok {
		guiLogger.Debug("duplicate widget id in frame", "id", id, "label", label, "previous", prev)
		return
	}
	ctx.seenIDs[id] = label
}
