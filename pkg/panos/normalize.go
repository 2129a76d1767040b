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

// Children returns the named child elements as a uniform slice, in document
// order. The device's payloads collapse single-element lists to bare objects;
// this accessor makes that ambiguity disappear: a single child yields a
// one-element slice, an absent or nil node yields an empty slice, and the
// operation is idempotent over already-uniform collections.
func (n *Node) Children(name string) []*Node {
	if n.IsNil() {
		return nil
	}

	elements := n.el.SelectElements(name)
	if len(elements) == 0 {
		return nil
	}

	nodes := make([]*Node, 0, len(elements))
	for _, el := range elements {
		nodes = append(nodes, wrap(el))
	}

	return nodes
}

// Entries is shorthand for the device's ubiquitous entry collections.
func Entries(n *Node) []*Node {
	return n.Children("entry")
}
