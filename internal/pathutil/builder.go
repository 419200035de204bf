// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"strconv"
	"strings"
	"sync"
)

// PathBuilder accumulates dotted location segments. Array indices attach to
// the previous segment without a separator.
type PathBuilder struct {
	segments []string
	length   int
}

// Push appends an object key.
func (p *PathBuilder) Push(segment string) {
	if len(p.segments) > 0 {
		p.length++
	}
	p.segments = append(p.segments, segment)
	p.length += len(segment)
}

// PushIndex appends an array index rendered as "[i]".
func (p *PathBuilder) PushIndex(i int) {
	seg := "[" + strconv.Itoa(i) + "]"
	p.segments = append(p.segments, seg)
	p.length += len(seg)
}

// Pop removes the last segment, if any.
func (p *PathBuilder) Pop() {
	n := len(p.segments)
	if n == 0 {
		return
	}
	last := p.segments[n-1]
	p.segments = p.segments[:n-1]
	p.length -= len(last)
	if n > 1 && !isIndex(last) {
		p.length--
	}
}

// Reset empties the builder, keeping its capacity.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// String renders the accumulated location.
func (p *PathBuilder) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(p.length)
	b.WriteString(p.segments[0])
	for _, seg := range p.segments[1:] {
		if !isIndex(seg) {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func isIndex(seg string) bool {
	return len(seg) > 0 && seg[0] == '['
}

const (
	defaultPathCap = 8
	maxPathCap     = 64
)

var builderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]string, 0, defaultPathCap)}
	},
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p := builderPool.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns p to the pool. Builders grown past maxPathCap are dropped.
func Put(p *PathBuilder) {
	if p == nil || cap(p.segments) > maxPathCap {
		return
	}
	builderPool.Put(p)
}
