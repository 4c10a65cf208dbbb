package app

import (
    "io"
    "os"
    "time"

    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
    lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging configures the global zerolog logger: human-readable output
// on stderr plus an optional rotated JSON log file.
func SetupLogging(cfg Config) io.Closer {
    zerolog.TimeFieldFormat = time.RFC3339
    writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}}

    var file *lumberjack.Logger
    if cfg.LogFile != "" {
        size := cfg.LogMaxSizeMB
        if size <= 0 { size = 10 }
        file = &lumberjack.Logger{
            Filename:   cfg.LogFile,
            MaxSize:    size,
            MaxBackups: cfg.LogMaxBackups,
        }
        writers = append(writers, file)
    }
    log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()

    if cfg.Verbose {
        zerolog.SetGlobalLevel(zerolog.DebugLevel)
    } else {
        zerolog.SetGlobalLevel(zerolog.InfoLevel)
    }
    if file == nil {
        return nopCloser{}
    }
    return file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
