// Package secret provides Secret, an in-memory encrypted string.
//
// Values are sealed with XChaCha20-Poly1305 under a key derived once per
// process. A Secret renders as "[secret]" in fmt, slog and JSON output;
// only Unveil returns the plain value.
package secret
