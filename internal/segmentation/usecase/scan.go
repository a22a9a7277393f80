package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"localization-srv/internal/segmentation"
)

// draft is a segment before ids are assigned.
type draft struct {
	text    string
	start   int
	end     int
	tag     segmentation.Tag
	leading bool
	dropped bool
}

// scan holds the state of one segmentation run.
type scan struct {
	source string
	// masked is source with claimed spans blanked out.
	masked []byte
	drafts []*draft
}

func newScan(source string) *scan {
	return &scan{source: source, masked: []byte(source)}
}

func (s *scan) leading(p segmentation.Pattern) {
	loc := p.Regexp.FindStringSubmatchIndex(s.source)
	if loc == nil {
		return
	}
	start, end := loc[0], loc[1]
	if len(loc) >= 4 && loc[2] >= 0 {
		start, end = loc[2], loc[3]
	}
	s.add(start, end, p, true)
}

func (s *scan) claim(p segmentation.Pattern) {
	locs := p.Regexp.FindAllIndex(s.masked, -1)
	for _, loc := range locs {
		d := s.add(loc[0], loc[1], p, false)
		if d == nil {
			continue
		}
		for _, other := range s.drafts {
			if other.leading && overlaps(other, d) {
				other.dropped = true
			}
		}
	}
	for _, loc := range locs {
		blank(s.masked, loc[0], loc[1])
	}
}

func (s *scan) phrase(p segmentation.Pattern) {
	for _, loc := range p.Regexp.FindAllStringIndex(s.source, -1) {
		text := strings.TrimSpace(s.source[loc[0]:loc[1]])
		if text == "" || s.captured(text) {
			continue
		}
		s.add(loc[0], loc[1], p, false)
	}
}

// remainder runs p over the source with every kept text deleted. A chunk that
// joins text around a deletion starts at its first source byte.
func (s *scan) remainder(p segmentation.Pattern) {
	rest, offsets := strip(s.source, s.kept())
	for _, loc := range p.Regexp.FindAllStringIndex(rest, -1) {
		raw := rest[loc[0]:loc[1]]
		text := strings.TrimSpace(raw)
		if text == "" || utf8.RuneCountInString(text) < p.MinLength {
			continue
		}
		first := loc[0] + len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
		last := first + len(text) - 1
		s.drafts = append(s.drafts, &draft{
			text:  text,
			start: offsets[first],
			end:   offsets[last] + 1,
			tag:   p.Tag,
		})
	}
}

// add trims the span, applies MinLength and records a draft.
func (s *scan) add(start, end int, p segmentation.Pattern, leading bool) *draft {
	raw := s.source[start:end]
	text := strings.TrimSpace(raw)
	if text == "" || utf8.RuneCountInString(text) < p.MinLength {
		return nil
	}
	start += len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
	d := &draft{
		text:    text,
		start:   start,
		end:     start + len(text),
		tag:     p.Tag,
		leading: leading,
	}
	s.drafts = append(s.drafts, d)
	return d
}

// captured reports whether text is a substring of any kept draft.
func (s *scan) captured(text string) bool {
	for _, d := range s.kept() {
		if strings.Contains(d.text, text) {
			return true
		}
	}
	return false
}

func (s *scan) kept() []*draft {
	out := make([]*draft, 0, len(s.drafts))
	for _, d := range s.drafts {
		if !d.dropped {
			out = append(out, d)
		}
	}
	return out
}

func overlaps(a, b *draft) bool {
	return a.start < b.end && b.start < a.end
}

// blank replaces buf[start:end] with newlines so later patterns stop at the span.
func blank(buf []byte, start, end int) {
	for i := start; i < end; i++ {
		buf[i] = '\n'
	}
}

// strip deletes every occurrence of each draft text from source. When a
// deletion sits between two blanks, one blank goes with it. offsets maps each
// byte of the result back to its position in source.
func strip(source string, drafts []*draft) (string, []int) {
	removed := make([]bool, len(source))
	for _, d := range drafts {
		if d.text == "" {
			continue
		}
		from := 0
		for {
			idx := strings.Index(source[from:], d.text)
			if idx < 0 {
				break
			}
			start, end := from+idx, from+idx+len(d.text)
			for i := start; i < end; i++ {
				removed[i] = true
			}
			if start > 0 && isBlank(source[start-1]) && end < len(source) && isBlank(source[end]) {
				removed[end] = true
			}
			from = end
		}
	}

	var b strings.Builder
	offsets := make([]int, 0, len(source))
	for i := 0; i < len(source); i++ {
		if removed[i] {
			continue
		}
		b.WriteByte(source[i])
		offsets = append(offsets, i)
	}
	return b.String(), offsets
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
