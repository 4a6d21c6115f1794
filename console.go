package scriptutils

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogFunc writes its arguments to one log channel.
type LogFunc func(args ...any)

// Console is a log sink with three channels. A nil channel is unavailable
// and writes to it are dropped.
type Console struct {
	Error LogFunc
	Info  LogFunc
	Log   LogFunc
}

// Logger provides structured logging.
type Logger interface {
	Debug(ctx context.Context, msg string, keysAndValues ...any)
	Info(ctx context.Context, msg string, keysAndValues ...any)
	Error(ctx context.Context, msg string, keysAndValues ...any)
}

// DefaultConsole returns a console writing to the logrus standard logger.
func DefaultConsole() Console {
	return LogrusConsole(logrus.StandardLogger())
}

// LogrusConsole returns a console writing to l. The log channel maps to
// Print, which logrus emits at info level.
func LogrusConsole(l logrus.FieldLogger) Console {
	if l == nil {
		return Console{}
	}
	return Console{
		Error: l.Error,
		Info:  l.Info,
		Log:   l.Print,
	}
}

// LoggerConsole adapts a structured Logger. The arguments of each call are
// joined into the message; the log channel maps to Debug.
func LoggerConsole(ctx context.Context, l Logger) Console {
	if l == nil {
		return Console{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return Console{
		Error: func(args ...any) { l.Error(ctx, fmt.Sprint(args...)) },
		Info:  func(args ...any) { l.Info(ctx, fmt.Sprint(args...)) },
		Log:   func(args ...any) { l.Debug(ctx, fmt.Sprint(args...)) },
	}
}

func (c Console) write(ch LogFunc, args []any) {
	if ch != nil {
		ch(args...)
	}
}
