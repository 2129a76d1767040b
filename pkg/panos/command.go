/*
 * Copyright 2025 NetAPI Project Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package panos

import (
	"strings"

	"github.com/beevik/etree"
)

// CommandPath is a slash-delimited operation or config path, independent of
// any specific target instance. The optional trailing argument names a target
// for the command ("ae1", "all"); it is inserted as raw text, so callers must
// pass values that are already XML-safe tokens.
type CommandPath struct {
	segments []string
	arg      string
}

// NewCommandPath builds a CommandPath from individual segments.
func NewCommandPath(segments ...string) CommandPath {
	return CommandPath{segments: append([]string(nil), segments...)}
}

// ParsePath splits a slash-delimited path such as "/show/system/info".
// A leading slash is tolerated; empty segments are preserved so that Encode
// can reject them.
func ParsePath(path string) CommandPath {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return CommandPath{}
	}

	return CommandPath{segments: strings.Split(trimmed, "/")}
}

// WithArg returns a copy of the path carrying the given command argument.
func (p CommandPath) WithArg(arg string) CommandPath {
	p.arg = arg
	return p
}

// Segments returns a copy of the ordered path segments.
func (p CommandPath) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Arg returns the trailing command argument, if any.
func (p CommandPath) Arg() string {
	return p.arg
}

// String renders the path in its slash-delimited form, used verbatim as the
// xpath parameter on config reads.
func (p CommandPath) String() string {
	return "/" + strings.Join(p.segments, "/")
}

// Encode converts the path to the device's nested-tag command syntax: tags
// open in path order and close in reverse, with the argument as raw text
// inside the innermost tag.
func (p CommandPath) Encode() (string, error) {
	if len(p.segments) == 0 {
		return "", &APIError{Kind: KindInvalidCommand, Message: "empty command path"}
	}

	var b strings.Builder

	for _, seg := range p.segments {
		if seg == "" {
			return "", &APIError{
				Kind:    KindInvalidCommand,
				Message: "empty segment in command path",
				Command: p.String(),
			}
		}

		b.WriteString("<")
		b.WriteString(seg)
		b.WriteString(">")
	}

	b.WriteString(p.arg)

	for i := len(p.segments) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(p.segments[i])
		b.WriteString(">")
	}

	return b.String(), nil
}

// DecodeCommand parses an encoded command back into a CommandPath. Each
// nesting level must contain exactly one child element; the innermost
// element's text becomes the argument.
func DecodeCommand(cmd string) (CommandPath, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(cmd); err != nil {
		return CommandPath{}, &APIError{Kind: KindParse, Message: err.Error(), Command: cmd}
	}

	el := doc.Root()
	if el == nil {
		return CommandPath{}, &APIError{Kind: KindParse, Message: "no root element", Command: cmd}
	}

	var segments []string

	for el != nil {
		segments = append(segments, el.Tag)

		children := el.ChildElements()
		switch len(children) {
		case 0:
			return CommandPath{segments: segments, arg: strings.TrimSpace(el.Text())}, nil
		case 1:
			el = children[0]
		default:
			return CommandPath{}, &APIError{
				Kind:    KindParse,
				Message: "command nesting is not a single chain",
				Command: cmd,
			}
		}
	}

	return CommandPath{segments: segments}, nil
}
