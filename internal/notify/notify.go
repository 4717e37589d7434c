package notify

import "go.uber.org/zap"

// Notifier - односторонний канал уведомлений об исходе мутаций,
// замена toast-сообщений из UI. Ошибки канала не влияют на результат
// операции.
type Notifier interface {
	Success(msg string, fields ...zap.Field)
	Failure(msg string, fields ...zap.Field)
}

type zapNotifier struct {
	log *zap.Logger
}

// NewZap пишет уведомления в структурный лог
func NewZap(log *zap.Logger) Notifier {
	return &zapNotifier{log: log}
}

func (n *zapNotifier) Success(msg string, fields ...zap.Field) {
	n.log.Info(msg, fields...)
}

func (n *zapNotifier) Failure(msg string, fields ...zap.Field) {
	n.log.Warn(msg, fields...)
}

type nopNotifier struct{}

// NewNop - заглушка для тестов
func NewNop() Notifier {
	return nopNotifier{}
}

func (nopNotifier) Success(string, ...zap.Field) {}
func (nopNotifier) Failure(string, ...zap.Field) {}
