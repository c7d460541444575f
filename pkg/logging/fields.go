package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Field helpers for the domain vocabulary

func Component(name string) Field {
	return String("component", name)
}

func SessionID(id string) Field {
	return String("session_id", id)
}

func EntityKind(kind string) Field {
	return String("entity_kind", kind)
}

func Track(name string) Field {
	return String("track", name)
}

func Statistic(name string) Field {
	return String("statistic", name)
}

func Parameter(name string) Field {
	return String("parameter", name)
}

func Frames(n int) Field {
	return Int("frames", n)
}

func Entities(n int) Field {
	return Int("entities", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}
