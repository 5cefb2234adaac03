package router

import (
	"fmt"
	"net/url"
	"strings"
)

type segmentKind int

const (
	segmentStatic segmentKind = iota
	segmentParam
	segmentCatchAll
)

type segment struct {
	kind  segmentKind
	value string // literal text, or the parameter name
}

// pattern is a compiled route path such as "/palette/:id" or "/:pathMatch(.*)*".
type pattern struct {
	raw      string
	segments []segment
}

func compilePattern(raw string) (*pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return nil, fmt.Errorf("%w: must start with /", ErrBadPattern)
	}

	parts := splitPath(raw)
	p := &pattern{raw: raw, segments: make([]segment, 0, len(parts))}

	for i, part := range parts {
		last := i == len(parts)-1

		switch {
		case part == "*":
			if !last {
				return nil, fmt.Errorf("%w: catch-all must be the last segment", ErrBadPattern)
			}
			p.segments = append(p.segments, segment{kind: segmentCatchAll, value: "pathMatch"})

		case strings.HasPrefix(part, ":"):
			name, constraint := part[1:], ""
			if idx := strings.IndexByte(name, '('); idx >= 0 {
				name, constraint = name[:idx], name[idx:]
			}
			if name == "" {
				return nil, fmt.Errorf("%w: empty parameter name in %q", ErrBadPattern, part)
			}

			switch constraint {
			case "":
				p.segments = append(p.segments, segment{kind: segmentParam, value: name})
			case "(.*)", "(.*)*":
				if !last {
					return nil, fmt.Errorf("%w: catch-all must be the last segment", ErrBadPattern)
				}
				p.segments = append(p.segments, segment{kind: segmentCatchAll, value: name})
			default:
				return nil, fmt.Errorf("%w: unsupported constraint %q", ErrBadPattern, constraint)
			}

		case part == "":
			return nil, fmt.Errorf("%w: empty segment", ErrBadPattern)

		default:
			p.segments = append(p.segments, segment{kind: segmentStatic, value: part})
		}
	}

	return p, nil
}

// splitPath breaks a path into segments, ignoring leading and trailing slashes.
// The root path has no segments.
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// match reports whether parts satisfy the pattern. Static segments compare
// case-insensitively; parameter values are path-unescaped.
func (p *pattern) match(parts []string) (Params, bool) {
	params := Params{}

	for i, seg := range p.segments {
		if seg.kind == segmentCatchAll {
			params[seg.value] = strings.Join(parts[i:], "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}

		switch seg.kind {
		case segmentStatic:
			if !strings.EqualFold(parts[i], seg.value) {
				return nil, false
			}
		case segmentParam:
			if parts[i] == "" {
				return nil, false
			}
			params[seg.value] = unescapeSegment(parts[i])
		}
	}

	if len(parts) != len(p.segments) {
		return nil, false
	}
	return params, true
}

// isCatchAll is true for a pattern made of nothing but a catch-all segment.
func (p *pattern) isCatchAll() bool {
	return len(p.segments) == 1 && p.segments[0].kind == segmentCatchAll
}

func (p *pattern) isStatic() bool {
	for _, seg := range p.segments {
		if seg.kind != segmentStatic {
			return false
		}
	}
	return true
}

// key is the shape of the pattern with parameter names erased, so that
// "/palette/:id" and "/palette/:slug" collide.
func (p *pattern) key() string {
	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		switch seg.kind {
		case segmentStatic:
			b.WriteString(strings.ToLower(seg.value))
		case segmentParam:
			b.WriteByte(':')
		case segmentCatchAll:
			b.WriteByte('*')
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// build fills the pattern with params to produce a concrete path.
func (p *pattern) build(params Params) (string, error) {
	var b strings.Builder
	for _, seg := range p.segments {
		switch seg.kind {
		case segmentStatic:
			b.WriteByte('/')
			b.WriteString(seg.value)
		case segmentParam:
			v, ok := params[seg.value]
			if !ok || v == "" {
				return "", fmt.Errorf("%w: %s", ErrMissingParam, seg.value)
			}
			b.WriteByte('/')
			b.WriteString(url.PathEscape(v))
		case segmentCatchAll:
			if v := strings.Trim(params[seg.value], "/"); v != "" {
				b.WriteByte('/')
				b.WriteString(v)
			}
		}
	}
	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}

func unescapeSegment(s string) string {
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}
