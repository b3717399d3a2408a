// Package error provides the immutable Error record carried by failed Results.
//
// It exposes a single concrete type Error that implements contract.Error and integrates
// with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Human-readable Message
//   - Caller-defined numeric Code (CodeException and CodeNullValue are reserved by the factories)
//   - Optional underlying cause preserved for errors.Is / errors.As
//   - Structured logging through zapcore.ObjectMarshaler
//
// Construction options are available via E and With* helpers, and Wrap/Ensure provide
// convenient utilities for adapting arbitrary errors.
package error
