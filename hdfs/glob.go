package hdfs

import (
	"path"
	"strings"
)

// hasGlobMeta reports whether p contains any glob metacharacter (spec
// §4.J "glob detection").
func hasGlobMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{}")
}

// expandBraces expands the leftmost {a,b,...} group into N paths,
// recursing left to right until no braces remain (spec §4.J "brace
// expansion"). Empty alternatives are allowed ("{,x}" yields "" and "x").
func expandBraces(p string) []string {
	start := strings.IndexByte(p, '{')
	if start < 0 {
		return []string{p}
	}
	end := matchingBrace(p, start)
	if end < 0 {
		return []string{p}
	}

	prefix := p[:start]
	suffix := p[end+1:]
	alternatives := splitTopLevel(p[start+1 : end])

	var out []string
	for _, alt := range alternatives {
		for _, expanded := range expandBraces(prefix + alt + suffix) {
			out = append(out, expanded)
		}
	}
	return out
}

// matchingBrace finds the index of the '}' matching the '{' at open,
// respecting nested braces.
func matchingBrace(p string, open int) int {
	depth := 0
	for i := open; i < len(p); i++ {
		switch p[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s on commas that are not inside a nested {...}
// group.
func splitTopLevel(s string) []string {
	var out []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[last:i])
				last = i + 1
			}
		}
	}
	out = append(out, s[last:])
	return out
}

// expandPath resolves and globs p into zero or more concrete paths,
// applying brace expansion first, then glob traversal (spec §4.I
// "optionally expand (§4.J)").
func (c *Client) expandPath(p string, includeToplevel bool) ([]string, error) {
	var out []string
	for _, branch := range expandBraces(p) {
		resolved, err := c.resolve(branch)
		if err != nil {
			return nil, err
		}
		if !hasGlobMeta(resolved) {
			out = append(out, resolved)
			continue
		}
		matches, err := c.globPath(resolved, includeToplevel)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

// expandAll resolves and expands every path in paths, in input order
// (spec §5 "across files supplied in one call, order equals input
// order"). Every path-operation entry point that takes a path list runs
// its inputs through this before issuing any RPC.
func (c *Client) expandAll(paths []string, includeToplevel bool) ([]string, error) {
	var out []string
	for _, p := range paths {
		matches, err := c.expandPath(p, includeToplevel)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

// globPath implements spec §4.J's glob-match algorithm: split by "/", find
// the first segment with a glob metacharacter, list that segment's parent
// directory, match each child's name against the glob segment, and either
// recurse into the remainder or resolve/list it.
func (c *Client) globPath(p string, includeToplevel bool) ([]string, error) {
	segments := strings.Split(strings.TrimPrefix(p, "/"), "/")

	globIdx := -1
	for i, seg := range segments {
		if hasGlobMeta(seg) {
			globIdx = i
			break
		}
	}
	if globIdx < 0 {
		return []string{p}, nil
	}

	parent := "/" + strings.Join(segments[:globIdx], "/")
	globSeg := segments[globIdx]
	remainder := segments[globIdx+1:]

	children, err := c.lsChildren(parent, false)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, child := range children {
		name := path.Base(child.Path)
		matched, err := path.Match(globSeg, name)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		if len(remainder) == 0 {
			if child.IsDir {
				grandchildren, err := c.lsChildren(child.Path, false)
				if err != nil {
					return nil, err
				}
				for _, gc := range grandchildren {
					out = append(out, gc.Path)
				}
				if includeToplevel {
					out = append(out, child.Path)
				}
			} else {
				out = append(out, child.Path)
			}
			continue
		}

		rest := strings.Join(remainder, "/")
		full := child.Path + "/" + rest
		if hasGlobMeta(rest) {
			matches, err := c.globPath(full, includeToplevel)
			if err != nil {
				return nil, err
			}
			out = append(out, matches...)
		} else {
			out = append(out, full)
		}
	}
	return out, nil
}
