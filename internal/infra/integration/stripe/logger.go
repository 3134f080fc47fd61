package stripe

import (
	"fmt"
	"log/slog"
)

// slogLeveled adapta o LeveledLogger do SDK. O SDK loga em Info cada
// requisição e em Error cada resposta 4xx; o use case já loga as falhas,
// então os dois descem um nível.
type slogLeveled struct {
	logger *slog.Logger
}

func (l slogLeveled) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l slogLeveled) Infof(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l slogLeveled) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l slogLeveled) Errorf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}
