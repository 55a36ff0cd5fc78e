package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/factyne/factyne/internal/model"
)

var (
	// ErrEmptyText is returned when the submitted text is empty after
	// whitespace normalization.
	ErrEmptyText = errors.New("text is empty")
	// ErrTextTooLong is returned when the submitted text exceeds the
	// configured length cap.
	ErrTextTooLong = errors.New("text exceeds length limit")
)

// Candidate is one segmentation candidate: a span of the normalized text
// that may become a claim.
type Candidate struct {
	Text string
	Span model.Span // offsets into the normalized text
}

// Segmenter splits normalized text into ordered candidate spans. Identical
// input always yields identical spans and ordering.
type Segmenter struct {
	maxTextLen int
}

// NewSegmenter creates a segmenter with the given input length cap.
func NewSegmenter(maxTextLen int) *Segmenter {
	if maxTextLen <= 0 {
		maxTextLen = 50000
	}
	return &Segmenter{maxTextLen: maxTextLen}
}

// Normalize collapses whitespace runs to single spaces and trims the ends.
// Validation against the length cap happens on the raw input, so the cap the
// caller sees matches what they submitted.
func (s *Segmenter) Normalize(text string) (string, error) {
	if len(text) > s.maxTextLen {
		return "", fmt.Errorf("%w: %d > %d characters", ErrTextTooLong, len(text), s.maxTextLen)
	}
	norm := strings.Join(strings.Fields(text), " ")
	if norm == "" {
		return "", ErrEmptyText
	}
	return norm, nil
}

// Segment splits normalized text into candidates. Splits occur at sentence
// terminators followed by whitespace (or end of input), and additionally at
// semicolons, so a single sentence carrying multiple coordinated assertions
// yields one candidate per assertion.
func (s *Segmenter) Segment(norm string) []Candidate {
	var candidates []Candidate
	start := 0

	for i := 0; i < len(norm); i++ {
		c := norm[i]
		isTerminator := c == '.' || c == '!' || c == '?'
		isCoordinator := c == ';'
		if !isTerminator && !isCoordinator {
			continue
		}
		// Only split when the boundary is followed by a space or ends the
		// input; this avoids splitting inside "3.5" or "U.S. data".
		atEnd := i+1 >= len(norm)
		if !atEnd && norm[i+1] != ' ' {
			continue
		}
		if c == '.' && !atEnd && !startsUpperOrDigit(norm[i+2:]) {
			// "Dr. smith said..." style abbreviation followed by a
			// lowercase continuation stays in one candidate.
			continue
		}
		end := i + 1
		if isCoordinator {
			end = i // the semicolon itself is not part of the claim
		}
		if cand, ok := s.candidate(norm, start, end); ok {
			candidates = append(candidates, cand)
		}
		start = i + 1
	}

	if start < len(norm) {
		if cand, ok := s.candidate(norm, start, len(norm)); ok {
			candidates = append(candidates, cand)
		}
	}

	return candidates
}

// candidate trims a raw span and keeps its offsets aligned with the trim.
func (s *Segmenter) candidate(norm string, start, end int) (Candidate, bool) {
	raw := norm[start:end]
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Candidate{}, false
	}
	lead := strings.Index(raw, trimmed)
	return Candidate{
		Text: trimmed,
		Span: model.Span{Start: start + lead, End: start + lead + len(trimmed)},
	}, true
}

func startsUpperOrDigit(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r) || unicode.IsDigit(r)
	}
	return false
}
