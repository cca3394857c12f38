// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/ringnet/ring"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the node-link JSON form of a reduced graph.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Link `json:"edges"`
}

// Node is one row of the input table.
type Node struct {
	ID        int    `json:"id"`
	Label     string `json:"label,omitempty"`
	Component int    `json:"component"`
}

// Link is one undirected, weighted edge; Source <= Target.
type Link struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
}

// NewDocument converts g into its node-link form. labels may be nil; otherwise
// it must hold one label per row.
func NewDocument(g *ring.ReducedGraph, labels []string) (*Document, error) {
	if labels != nil && len(labels) != g.NodeCount() {
		return nil, fmt.Errorf("NewDocument: %d labels for %d rows: %w", len(labels), g.NodeCount(), ErrLabelCount)
	}
	comp := g.ComponentOf()
	doc := &Document{
		Nodes: make([]Node, g.NodeCount()),
		Edges: make([]Link, 0, g.EdgeCount()),
	}
	for r := range doc.Nodes {
		doc.Nodes[r] = Node{ID: r, Component: comp[r]}
		if labels != nil {
			doc.Nodes[r].Label = labels[r]
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Link{Source: e.U, Target: e.V, Weight: e.Weight})
	}

	return doc, nil
}

// WriteJSON encodes g as an indented node-link document.
func WriteJSON(w io.Writer, g *ring.ReducedGraph, labels []string) error {
	doc, err := NewDocument(g, labels)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}
