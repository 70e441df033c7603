package logger

import (
	"context"
	"log/slog"
	"maps"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler wraps a slog.Handler and adds attributes taken from the
// context of every record. An extracted attribute never overrides one with the
// same key that the caller already attached, either on the record or through
// WithAttrs outside any group.
type ContextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
	bound      map[string]struct{}
	grouped    bool
}

// NewContextHandler decorates next with the given extractors. Nil extractors
// are dropped, and when none remain next is returned unwrapped.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	if len(clean) == 0 {
		return next
	}
	return &ContextHandler{next: next, extractors: clean}
}

// Enabled defers to the wrapped handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle runs extractors per record so request-scoped values are never stale.
func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	var present map[string]struct{}
	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok || attr.Key == "" {
			continue
		}
		if present == nil {
			present = h.recordKeys(rec)
		}
		if _, dup := present[attr.Key]; dup {
			continue
		}
		present[attr.Key] = struct{}{}
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) recordKeys(rec slog.Record) map[string]struct{} {
	keys := make(map[string]struct{}, rec.NumAttrs()+len(h.bound))
	if !h.grouped {
		maps.Copy(keys, h.bound)
	}
	rec.Attrs(func(a slog.Attr) bool {
		keys[a.Key] = struct{}{}
		return true
	})
	return keys
}

// WithAttrs binds attrs on the wrapped handler and remembers their keys.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := &ContextHandler{
		next:       h.next.WithAttrs(attrs),
		extractors: h.extractors,
		bound:      h.bound,
		grouped:    h.grouped,
	}
	if !h.grouped && len(attrs) > 0 {
		c.bound = maps.Clone(h.bound)
		if c.bound == nil {
			c.bound = make(map[string]struct{}, len(attrs))
		}
		for _, a := range attrs {
			c.bound[a.Key] = struct{}{}
		}
	}
	return c
}

// WithGroup opens a group. Extracted attributes land inside it, so top-level
// keys bound earlier stop suppressing them.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &ContextHandler{next: h.next.WithGroup(name), extractors: h.extractors, grouped: true}
}
