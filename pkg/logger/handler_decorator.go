package logger

import (
	"context"
	"log/slog"
)

// Redacted replaces the value of every attribute with a sensitive key.
const Redacted = "[REDACTED]"

// DefaultRedactedKeys are masked by loggers built with New unless
// WithRedactedKeys says otherwise.
var DefaultRedactedKeys = []string{"secret", "secrets", "token", "derived_secret"}

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler. It masks attributes whose key is
// sensitive, at any group depth, and appends attributes taken from the
// record's context.
type LogHandlerDecorator struct {
	next       slog.Handler
	redacted   map[string]struct{}
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next. Values under any of the redacted keys
// are replaced with Redacted before they reach next.
func NewLogHandlerDecorator(next slog.Handler, redacted []string, extractors ...ContextExtractor) *LogHandlerDecorator {
	keys := make(map[string]struct{}, len(redacted))
	for _, k := range redacted {
		keys[k] = struct{}{}
	}
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, redacted: keys, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.redacted) > 0 && rec.NumAttrs() > 0 {
		masked := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
		rec.Attrs(func(a slog.Attr) bool {
			masked.AddAttrs(h.mask(a))
			return true
		})
		rec = masked
	}
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(h.mask(attr))
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.mask(a)
	}
	return &LogHandlerDecorator{next: h.next.WithAttrs(masked), redacted: h.redacted, extractors: h.extractors}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithGroup(name), redacted: h.redacted, extractors: h.extractors}
}

func (h *LogHandlerDecorator) mask(a slog.Attr) slog.Attr {
	if _, ok := h.redacted[a.Key]; ok {
		return slog.String(a.Key, Redacted)
	}
	v := a.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		return a
	}
	group := v.Group()
	masked := make([]slog.Attr, len(group))
	for i, g := range group {
		masked[i] = h.mask(g)
	}
	return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
}
