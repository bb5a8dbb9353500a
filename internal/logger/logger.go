package logger

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JSONLogger adapts the standard log package to one JSON object per
// line, tagged with the serving instance. Wire it up with log.SetOutput
// and log.SetFlags(0) so the stdlib does not prepend its own prefix.
type JSONLogger struct {
	Instance string
}

func (l *JSONLogger) Write(p []byte) (n int, err error) {
	logEntry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"level":     "info",
		"instance":  l.Instance,
		"message":   strings.TrimRight(string(p), "\n"),
	}

	jsonBytes, err := json.Marshal(logEntry)
	if err != nil {
		return 0, err
	}

	fmt.Println(string(jsonBytes))
	return len(p), nil
}
