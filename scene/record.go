// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Payload is the decoded scene graph document written by the
// perception pipeline. Either list may be absent.
type Payload struct {
	GroundTruth []NodeRecord `json:"gt_nodes"`
	Detected    []NodeRecord `json:"detected_nodes"`
}

// Nodes returns the node list selected by the given source.
func (pl *Payload) Nodes(src Source) []NodeRecord {
	if src == Detected {
		return pl.Detected
	}
	return pl.GroundTruth
}

// NodeRecord is one object of a node list, in the perception frame.
// The numeric arrays are kept as float64 so that values outside the
// float32 range are reported as non-finite rather than as parse errors.
type NodeRecord struct {
	ID           *int                `json:"id"`
	Name         string              `json:"name"`
	Position     []float64           `json:"position"`
	Extent       []float64           `json:"bbox_extent"`
	Rotation     []float64           `json:"rotation"`
	Interactions []InteractionRecord `json:"interactions"`
}

// InteractionRecord is a directed relation from the node that lists it
// to the node with id Target. Target is nil when the field is absent,
// so that it is not mistaken for node 0.
type InteractionRecord struct {
	Target      *int   `json:"target_object_idx"`
	Description string `json:"description"`
}

// Parse decodes the given payload text. It returns a [*ParseError]
// if the text is not a single JSON object of the expected shape.
func Parse(text []byte) (*Payload, error) {
	trimmed := bytes.TrimSpace(text)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ParseError{Err: fmt.Errorf("payload is not a JSON object")}
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	pl := &Payload{}
	if err := dec.Decode(pl); err != nil {
		return nil, &ParseError{Err: err}
	}
	if dec.More() {
		return nil, &ParseError{Err: fmt.Errorf("unexpected data after payload object at offset %d", dec.InputOffset())}
	}
	return pl, nil
}
