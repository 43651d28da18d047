package content

import (
	"context"
	"errors"

	"github.com/abhisek/mentor/internal/topic"
)

// CacheKey identifies one cacheable piece of content within a session.
// Subtopic-free kinds leave SubKey empty; level-free kinds leave Level
// empty.
type CacheKey struct {
	Kind     Kind
	TopicKey string
	SubKey   string
	Level    topic.Level
}

// Cache memoizes generated content for the lifetime of one session. It
// is deliberately not persisted: content may improve between sessions as
// the underlying model changes, so each session starts from empty.
type Cache struct {
	gen     Generator
	entries map[CacheKey]*Content
}

// NewCache creates an empty session cache over gen.
func NewCache(gen Generator) *Cache {
	return &Cache{gen: gen, entries: make(map[CacheKey]*Content)}
}

// GetOrGenerate returns cached content for the request's key, or invokes
// the generator. A generation failure is retried once with the identical
// request; the entry is stored only on success, so the retry is
// idempotent by construction. Grading and follow-up kinds pass through
// uncached but still get the single retry.
func (c *Cache) GetOrGenerate(ctx context.Context, req Request) (*Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := CacheKey{Kind: req.Kind, TopicKey: req.TopicKey}
	if req.Kind.Cacheable() {
		switch req.Kind {
		case KindLesson, KindPractice:
			key.SubKey = req.SubKey
			key.Level = req.Level
		case KindTopicOverview:
			key.Level = req.Level
		}
		if hit, ok := c.entries[key]; ok {
			return hit, nil
		}
	}

	out, err := c.gen.Generate(ctx, req)
	if err != nil {
		var genErr *GenerationError
		if !errors.As(err, &genErr) {
			return nil, err
		}
		// One retry with the same request, then give up.
		out, err = c.gen.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	if req.Kind.Cacheable() {
		c.entries[key] = out
	}
	return out, nil
}

// Len returns the number of stored entries.
func (c *Cache) Len() int { return len(c.entries) }
