//go:build amd64 || 386 || arm64 || arm || riscv64 || mips64le || mipsle || ppc64le || wasm

package stream

import "encoding/binary"

// NativeOrder returns the byte order of the architecture this process is
// running on.
func NativeOrder() binary.ByteOrder {
	return binary.LittleEndian
}
