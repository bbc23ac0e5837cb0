package logger

import (
	"go.uber.org/zap"
)

var sugar *zap.SugaredLogger

func init() {
	l, _ := zap.NewProduction()
	sugar = l.Sugar()
}

// Init replaces the default logger; development gets a console encoder with debug enabled.
func Init(environment string) error {
	l, err := newZap(environment)
	if err != nil {
		return err
	}
	sugar = l.Sugar()
	zap.ReplaceGlobals(l)
	return nil
}

func newZap(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func Info(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	sugar.Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	sugar.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	sugar.Warnf(format, v...)
}

// With returns a child logger carrying structured key/value pairs.
func With(keysAndValues ...interface{}) *zap.SugaredLogger {
	return sugar.With(keysAndValues...)
}

func Sync() {
	_ = sugar.Sync()
}
