package assert

import "testing"

func TestAssertNoopWithoutDebugTag(t *testing.T) {
	// Built without the "debug" tag, Assert must never panic.
	Assert(false, "this must not panic: %d", 42)
}
