// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"
)

// NodeType is a registered variant of [Node], selected by the
// node_type_name of the serialized format.
type NodeType struct {

	// Name is the unique serialized name of the type.
	Name string

	// Texture is the texture / icon reference handed to the renderer.
	Texture string

	// DiscScale multiplies [Settings.NodeDiscRadius] for nodes of this type.
	DiscScale float32
}

// nodeTypes is the dispatch table of node types, in registration order.
var nodeTypes = ordmap.New[string, *NodeType]()

// RegisterNodeType adds the given node type to the table of node types.
// It panics if the name is already registered.
func RegisterNodeType(nt *NodeType) *NodeType {
	if _, has := nodeTypes.ValueByKeyTry(nt.Name); has {
		panic(fmt.Sprintf("scene.RegisterNodeType: node type %q is already registered", nt.Name))
	}
	if nt.DiscScale <= 0 {
		nt.DiscScale = 1
	}
	nodeTypes.Add(nt.Name, nt)
	return nt
}

// NodeTypeByName returns the node type with the given name.
func NodeTypeByName(name string) (*NodeType, bool) {
	return nodeTypes.ValueByKeyTry(name)
}

// NodeTypeNames returns the names of all node types in registration order.
func NodeTypeNames() []string {
	return nodeTypes.Keys()
}

var (
	// DefaultNodeType is the plain node, and the fallback
	// for unknown type names.
	DefaultNodeType = RegisterNodeType(&NodeType{Name: "node", Texture: "node", DiscScale: 1})

	// PersonNodeType is a node with a person icon.
	PersonNodeType = RegisterNodeType(&NodeType{Name: "person", Texture: "person", DiscScale: 1.25})

	// ItemNodeType is a node with an item icon.
	ItemNodeType = RegisterNodeType(&NodeType{Name: "item", Texture: "item", DiscScale: 0.9})
)
