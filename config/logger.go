package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"jatsmeta/misc"
)

type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Format      string `yaml:"format,omitempty" validate:"omitempty,oneof=console json"`
	Destination string `yaml:"destination,omitempty" sanitize:"path_clean,assure_dir_exists_for_file" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

// ConsoleOutput is where informational console messages go. Extraction
// results may occupy stdout, in which case messages are moved to stderr.
type ConsoleOutput struct {
	mu sync.Mutex
	w  zapcore.WriteSyncer
}

func newConsoleOutput(w zapcore.WriteSyncer) *ConsoleOutput {
	return &ConsoleOutput{w: w}
}

// Redirect switches console messages to w. Safe to call on nil.
func (c *ConsoleOutput) Redirect(w io.Writer) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w = zapcore.AddSync(w)
}

func (c *ConsoleOutput) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

func (c *ConsoleOutput) Sync() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Sync()
}

func levelRange(from, to zapcore.Level) zap.LevelEnablerFunc {
	return func(lvl zapcore.Level) bool {
		return from <= lvl && lvl < to
	}
}

var logLevels = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"normal": zapcore.InfoLevel,
}

func consoleEncoderConfig(stream *os.File) zapcore.EncoderConfig {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if EnableColorOutput(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return ec
}

// Prepare returns configured zap logger for use by the program together with
// console output handle, so informational messages could be moved away from
// stdout later.
func (conf *LoggingConfig) Prepare(rpt *Report) (*zap.Logger, *ConsoleOutput, error) {

	// Console - informational messages to stdout, errors to stderr

	out := newConsoleOutput(zapcore.Lock(os.Stdout))

	var consoleCoreHP, consoleCoreLP zapcore.Core = zapcore.NewNopCore(), zapcore.NewNopCore()
	if lvl, ok := logLevels[conf.ConsoleLogger.Level]; ok {
		consoleCoreLP = zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig(os.Stdout)), out,
			levelRange(lvl, zapcore.ErrorLevel))
		consoleCoreHP = zapcore.NewCore(newEncoder(consoleEncoderConfig(os.Stderr)), zapcore.Lock(os.Stderr),
			levelRange(zapcore.ErrorLevel, zapcore.InvalidLevel))
	}

	// File

	levelRequested, modeRequested := conf.FileLogger.Level, conf.FileLogger.Mode
	if rpt != nil {
		// report needs everything we have
		levelRequested, modeRequested = "debug", "overwrite"
	}

	fileCore := zapcore.NewNopCore()
	var newName string
	if lvl, ok := logLevels[levelRequested]; ok {
		capturePanics(conf.FileLogger.Destination, modeRequested, rpt)

		var enc zapcore.Encoder
		if conf.FileLogger.Format == "json" {
			enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		} else {
			enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		}

		f, err := openLog(conf.FileLogger.Destination, modeRequested)
		if err != nil {
			if f, err = os.CreateTemp("", misc.GetAppName()+".*.log"); err != nil {
				return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
			}
			newName = f.Name()
		}
		fileCore = zapcore.NewCore(enc, zapcore.Lock(f), lvl)
		rpt.Store("final.log", f.Name())
	}

	log := zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore), zap.AddCaller())
	if len(newName) != 0 {
		// log was redirected - we need to report this
		log.Warn("Log file was redirected to new location", zap.String("location", newName))
	}
	return log.Named(misc.GetAppName()), out, nil
}

func openLog(fname, mode string) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if mode == "append" {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(fname, flags, 0644)
}

// capturePanics sends crash output next to the log file, or to a temporary
// file when that is not possible.
func capturePanics(logName, mode string, rpt *Report) {
	ef, err := openLog(filepath.Join(filepath.Dir(logName), misc.GetAppName()+"-panic.log"), mode)
	if err != nil {
		if ef, err = os.CreateTemp("", misc.GetAppName()+"-panic.*.log"); err != nil {
			return
		}
	}
	defer ef.Close()
	if err := debug.SetCrashOutput(ef, debug.CrashOptions{}); err == nil {
		rpt.Store("panic.log", ef.Name())
	}
}

// consoleEnc drops verbose error details from console messages, full errors
// go to the file log.
type consoleEnc struct {
	zapcore.Encoder
}

func newEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return consoleEnc{zapcore.NewConsoleEncoder(cfg)}
}

func (c consoleEnc) Clone() zapcore.Encoder {
	return consoleEnc{c.Encoder.Clone()}
}

func (c consoleEnc) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	newFields := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if e, ok := f.Interface.(error); ok && f.Type == zapcore.ErrorType {
			f.Interface = errors.New(e.Error())
		}
		newFields = append(newFields, f)
	}
	return c.Encoder.EncodeEntry(ent, newFields)
}
