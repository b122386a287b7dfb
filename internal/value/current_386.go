//go:build 386

package value

// Current is the Arch this binary was built for.
func Current() Arch { return Arch386 }
