//go:build amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm

// This core packs framebuffer and audio samples as native-endian words
// for the host backend to copy out directly; it only compiles on
// known little-endian targets.

package c64core
