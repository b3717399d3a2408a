package error

import (
	"go.uber.org/zap/zapcore"
)

var _ zapcore.ObjectMarshaler = (*Error)(nil)

// MarshalLogObject lets an Error be logged with zap.Object.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e == nil {
		return nil
	}

	enc.AddString("message", e.message)
	enc.AddInt("code", e.code)

	if e.cause != nil {
		enc.AddString("cause", e.cause.Error())
	}

	return nil
}
