//go:build vectordebug

package rawmem

// Debug reports whether contract assertions are compiled in.
const Debug = true

// Assert panics with msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
