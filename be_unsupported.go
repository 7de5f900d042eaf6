//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package c64core

// Deliberate compile error: this core has not been validated on
// big-endian hosts.
var _ = c64core_requires_a_little_endian_host
