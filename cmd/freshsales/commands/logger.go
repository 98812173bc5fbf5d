package commands

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fivetwenty-io/freshsales-client/pkg/freshsales"
)

// zapAdapter backs the freshsales.Logger interface with a zap logger
// writing to stderr.
type zapAdapter struct {
	logger *zap.SugaredLogger
}

func newZapAdapter() *zapAdapter {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)

	return &zapAdapter{logger: zap.New(core).Sugar()}
}

func fieldsToArgs(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

func (z *zapAdapter) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debugw(msg, fieldsToArgs(fields)...)
}

func (z *zapAdapter) Info(msg string, fields map[string]interface{}) {
	z.logger.Infow(msg, fieldsToArgs(fields)...)
}

func (z *zapAdapter) Warn(msg string, fields map[string]interface{}) {
	z.logger.Warnw(msg, fieldsToArgs(fields)...)
}

func (z *zapAdapter) Error(msg string, fields map[string]interface{}) {
	z.logger.Errorw(msg, fieldsToArgs(fields)...)
}

var _ freshsales.Logger = (*zapAdapter)(nil)
