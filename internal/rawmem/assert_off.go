//go:build !vectordebug

package rawmem

// Debug reports whether contract assertions are compiled in.
const Debug = false

// Assert is a no-op unless built with the vectordebug tag.
func Assert(bool, string) {}
