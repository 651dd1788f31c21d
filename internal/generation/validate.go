package generation

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformed marks an upstream response that failed shape or structural
// validation. Not retryable automatically; treated as a server-side defect.
var ErrMalformed = errors.New("malformed generation result")

// resultSchema mirrors the upstream response contract: three variants, each
// with a title, a passage, and five-element string lists.
const resultSchema = `{
  "type": "object",
  "required": ["keyword", "level", "generation0", "generation1", "generation2"],
  "properties": {
    "keyword": {"type": "string"},
    "level": {"type": "string"},
    "generation0": {"$ref": "#/definitions/content"},
    "generation1": {"$ref": "#/definitions/content"},
    "generation2": {"$ref": "#/definitions/content"}
  },
  "definitions": {
    "content": {
      "type": "object",
      "required": ["title", "passage", "question", "answer", "solution"],
      "properties": {
        "title": {"type": "string"},
        "passage": {"type": "string"},
        "question": {"type": "array", "items": {"type": "string"}, "minItems": 5, "maxItems": 5},
        "answer": {"type": "array", "items": {"type": "string"}, "minItems": 5, "maxItems": 5},
        "solution": {"type": "array", "items": {"type": "string"}, "minItems": 5, "maxItems": 5}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(resultSchema)

// ValidateShape checks raw upstream JSON against the response schema before
// any decoding.
func ValidateShape(raw []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !res.Valid() {
		return fmt.Errorf("%w: %s", ErrMalformed, res.Errors()[0].String())
	}
	return nil
}

// Validate checks the structural-completeness invariant: every variant needs
// a non-empty title and passage plus five-element lists of non-empty
// strings. Any single variant failing fails the whole result.
func (r *Result) Validate() error {
	for slot, c := range r.Variants() {
		if err := c.validate(); err != nil {
			return fmt.Errorf("%w: generation%d: %v", ErrMalformed, slot, err)
		}
	}
	return nil
}

func (c Content) validate() error {
	if c.Title == "" {
		return errors.New("empty title")
	}
	if c.Passage == "" {
		return errors.New("empty passage")
	}
	if len(c.Question) != ItemsPerContent || len(c.Answer) != ItemsPerContent || len(c.Solution) != ItemsPerContent {
		return fmt.Errorf("want %d items per list, got %d questions, %d answers, %d solutions",
			ItemsPerContent, len(c.Question), len(c.Answer), len(c.Solution))
	}
	for name, list := range map[string][]string{
		"question": c.Question,
		"answer":   c.Answer,
		"solution": c.Solution,
	} {
		for i, s := range list {
			if s == "" {
				return fmt.Errorf("empty %s[%d]", name, i)
			}
		}
	}
	return nil
}
