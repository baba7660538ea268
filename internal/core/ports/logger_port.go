package ports

type LoggerPort interface {
	Debug(message string, args map[string]interface{})
	Info(message string, args map[string]interface{})
	Warn(message string, args map[string]interface{})
	Error(message string, args map[string]interface{})
}
