package main

import (
	"fmt"
	"io"
	stdslog "log/slog"

	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/quicvarint"
	qlogrus "github.com/unkn0wn-root/quicvarint/log/logrus"
	qslog "github.com/unkn0wn-root/quicvarint/log/slog"
	qzap "github.com/unkn0wn-root/quicvarint/log/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(format string, verbose bool, w io.Writer) (quicvarint.Logger, error) {
	switch format {
	case "zap", "":
		level := zapcore.WarnLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
		return qzap.New(zap.New(core)), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.WarnLevel)
		if verbose {
			l.SetLevel(logrus.DebugLevel)
		}
		return qlogrus.New(l), nil
	case "slog":
		level := stdslog.LevelWarn
		if verbose {
			level = stdslog.LevelDebug
		}
		return qslog.New(stdslog.New(stdslog.NewTextHandler(w, &stdslog.HandlerOptions{Level: level}))), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
