package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvDevelopment escribe en consola con colores; cualquier otro entorno emite JSON.
const EnvDevelopment = "development"

// Config parámetros de arranque del logger.
type Config struct {
	Env   string
	Level string    // vacío o desconocido = info
	Out   io.Writer // nil = stdout
}

// Logger eventos estructurados por componente. Los casos de uso reciben uno
// ya nombrado desde cmd/api.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger del proceso y lo deja también como global de zerolog.
func New(cfg Config) *Logger {
	zl := zerolog.New(output(cfg)).
		Level(level(cfg.Level)).
		With().Timestamp().
		Logger()
	log.Logger = zl
	return &Logger{zl: zl}
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func output(cfg Config) io.Writer {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == EnvDevelopment {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return out
}

func level(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Named sublogger con el campo component.
func (l *Logger) Named(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal termina el proceso después de escribir el evento.
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
