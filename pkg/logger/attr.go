package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers keep key names consistent across packages. Helpers taking
// optional values return an empty slog.Attr, which slog drops, for zero input.

func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func ThemeID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("theme_id", id)
}

func Zone(zone string) slog.Attr {
	if zone == "" {
		return slog.Attr{}
	}
	return slog.String("zone", zone)
}

// Warning records a colour resolution diagnostic; empty means none.
func Warning(w string) slog.Attr {
	if w == "" {
		return slog.Attr{}
	}
	return slog.String("warning", w)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
