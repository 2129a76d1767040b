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

// Node wraps an element of the parsed reply tree. All accessors are nil-safe
// so that consumers can chain lookups the way the device's nested payloads
// invite, without checking every hop.
type Node struct {
	el *etree.Element
}

func wrap(el *etree.Element) *Node {
	if el == nil {
		return nil
	}

	return &Node{el: el}
}

// IsNil reports whether the node is absent.
func (n *Node) IsNil() bool {
	return n == nil || n.el == nil
}

// Name returns the element tag.
func (n *Node) Name() string {
	if n.IsNil() {
		return ""
	}

	return n.el.Tag
}

// Child returns the first child element with the given tag, or nil.
func (n *Node) Child(name string) *Node {
	if n.IsNil() {
		return nil
	}

	return wrap(n.el.SelectElement(name))
}

// Find resolves a slash-delimited path relative to this node, or nil.
func (n *Node) Find(path string) *Node {
	if n.IsNil() {
		return nil
	}

	return wrap(n.el.FindElement(path))
}

// Has reports whether a child element with the given tag exists.
func (n *Node) Has(name string) bool {
	return !n.Child(name).IsNil()
}

// Text returns the trimmed character data of the element.
func (n *Node) Text() string {
	if n.IsNil() {
		return ""
	}

	return strings.TrimSpace(n.el.Text())
}

// ChildText returns the trimmed text of the named child, or "".
func (n *Node) ChildText(name string) string {
	return n.Child(name).Text()
}

// Attr returns the value of the named attribute, or "".
func (n *Node) Attr(name string) string {
	if n.IsNil() {
		return ""
	}

	return n.el.SelectAttrValue(name, "")
}

// ParseResponse parses a raw XML reply, validates the device status flag, and
// returns the result subtree. The command string is carried into any error
// for diagnostics. The returned node may be nil when the reply carries an
// empty result (a standby device answering a config read, for example).
func ParseResponse(data []byte, command string) (*Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &APIError{Kind: KindParse, Message: err.Error(), Command: command}
	}

	root := doc.SelectElement("response")
	if root == nil {
		return nil, &APIError{Kind: KindParse, Message: "reply has no response element", Command: command}
	}

	if err := validate(root, command); err != nil {
		return nil, err
	}

	return wrap(root.SelectElement("result")), nil
}

// validate inspects the status flag and, on failure, extracts the error
// message from one of its two possible locations. It never panics; unknown
// codes pass through and are labeled by CodeText.
func validate(root *etree.Element, command string) error {
	if root.SelectAttrValue("status", "") != "error" {
		return nil
	}

	code := root.SelectAttrValue("code", "")

	msg := flattenText(root.SelectElement("msg"))
	if msg == "" {
		if result := root.SelectElement("result"); result != nil {
			msg = flattenText(result.SelectElement("msg"))
		}
	}

	if msg == "" {
		msg = "Unknown error"
	}

	return &APIError{Kind: KindDevice, Code: code, Message: msg, Command: command}
}

// flattenText collects the text of an element, falling back to joining the
// text of its children. Device error messages arrive either as bare text or
// as a list of line elements.
func flattenText(el *etree.Element) string {
	if el == nil {
		return ""
	}

	if text := strings.TrimSpace(el.Text()); text != "" {
		return text
	}

	var parts []string

	for _, child := range el.ChildElements() {
		if text := strings.TrimSpace(child.Text()); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "; ")
}
