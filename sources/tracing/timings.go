package tracing

import (
	"time"
)

func ReportExecutionForRE[R any, E error](log *Logger, action func() (R, E), report func(l *Logger)) (R, E) {
	start := time.Now()
	result, err := action()
	report(log.With(ExecutionTime, time.Since(start).String()))
	return result, err
}

func ReportExecution(log *Logger, action func(), report func(l *Logger)) time.Duration {
	start := time.Now()
	action()
	elapsed := time.Since(start)
	report(log.With(ExecutionTime, elapsed.String()))
	return elapsed
}
