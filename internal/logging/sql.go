package logging

import (
	"strings"

	"go.uber.org/zap"
)

// LogSQLQuery logs the statement collapsed onto a single line.
func LogSQLQuery(logger *zap.Logger, sql string) {
	logger.Debug("SQL query", zap.String("query", strings.Join(strings.Fields(sql), " ")))
}
