package result

import (
	"go.uber.org/zap/zapcore"

	apiError "github.com/next-trace/scg-result/error"
)

// MarshalLogObject lets a Result be logged with zap.Object. The success value
// itself is not logged.
func (r Result[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("success", r.IsSuccess())

	if f, ok := r.state.(failure); ok {
		return enc.AddArray("errors", errorArray(f.errors))
	}

	return nil
}

type errorArray []*apiError.Error

func (a errorArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range a {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}

	return nil
}
