package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"
)

// InitLog configures the global logger. Output always goes to stdout and, when
// logfile is set, to a daily rotated file kept for seven days.
func InitLog(logfile, level string) error {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(ParseLevel(level))

	if logfile == "" {
		log.SetOutput(os.Stdout)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logfile), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	writer, err := rotatelogs.New(
		logfile+".%Y%m%d",
		rotatelogs.WithLinkName(logfile),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("failed to create rotating log writer: %w", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, writer))
	log.Infof("📝 Logging to %s (level=%s)", logfile, log.GetLevel())
	return nil
}

// ParseLevel returns the logrus level for name, defaulting to info
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// LogFile builds the log file path for the running executable inside dir
func LogFile(dir string) string {
	if dir == "" {
		return ""
	}
	path, _ := os.Executable()
	_, exec := filepath.Split(path)
	if exec == "" {
		exec = "fulfillment-portal"
	}
	return filepath.Join(dir, exec+".log")
}
