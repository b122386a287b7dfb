//go:build amd64

package value

// Current is the Arch this binary was built for. Catalog rewriters and
// the emitter both key off this value rather than duplicating a build
// tag of their own for every arch-sensitive decision that isn't a full
// alternate code path.
func Current() Arch { return ArchAMD64 }
