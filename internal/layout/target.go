package layout

// Target describes the ABI target and its pointer properties.
type Target struct {
	Triple   string // e.g. "x86_64-linux-gnu"
	PtrSize  int    // bytes
	PtrAlign int    // bytes
}

// X86_64LinuxGNU is the default target.
func X86_64LinuxGNU() Target {
	return Target{
		Triple:   "x86_64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,
	}
}

// AArch64LinuxGNU describes 64-bit ARM Linux.
func AArch64LinuxGNU() Target {
	return Target{
		Triple:   "aarch64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,
	}
}

// Wasm32 describes 32-bit WebAssembly.
func Wasm32() Target {
	return Target{
		Triple:   "wasm32-unknown-unknown",
		PtrSize:  4,
		PtrAlign: 4,
	}
}

// Known lists every supported target, default first.
func Known() []Target {
	return []Target{X86_64LinuxGNU(), AArch64LinuxGNU(), Wasm32()}
}

// ByTriple resolves a known target triple.
func ByTriple(triple string) (Target, bool) {
	switch triple {
	case "", "x86_64-linux-gnu":
		return X86_64LinuxGNU(), true
	case "aarch64-linux-gnu":
		return AArch64LinuxGNU(), true
	case "wasm32-unknown-unknown":
		return Wasm32(), true
	}
	return Target{}, false
}
