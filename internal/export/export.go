// Package export renders decoded layer-group trees for inspection:
// a JSON document mirroring the tree, and a short text summary.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/MalekBael/FFXIV-LGB-Parser/pkg/lgb"
)

// jsonDocument is the top-level JSON shape. It flattens the file header
// and chunk header into one metadata block so consumers do not need to
// know the on-disk chunk layout.
type jsonDocument struct {
	Magic    string        `json:"magic"`
	GroupID  int32         `json:"groupId"`
	Name     string        `json:"name"`
	Layers   []jsonLayer   `json:"layers"`
	Warnings []jsonWarning `json:"warnings,omitempty"`
}

type jsonLayer struct {
	ID          uint32       `json:"id"`
	Name        string       `json:"name"`
	ToolVisible bool         `json:"toolVisible"`
	Decorative  bool         `json:"decorative,omitempty"`
	Placeholder bool         `json:"placeholder,omitempty"`
	Note        string       `json:"note,omitempty"`
	Objects     []jsonObject `json:"objects"`
}

type jsonObject struct {
	Type        string      `json:"type"`
	InstanceID  uint32      `json:"instanceId"`
	Name        string      `json:"name"`
	Translation [3]float32  `json:"translation"`
	Rotation    [4]float32  `json:"rotation"`
	Scale       [3]float32  `json:"scale"`
	Payload     lgb.Payload `json:"payload,omitempty"`
	Placeholder bool        `json:"placeholder,omitempty"`
	Note        string      `json:"note,omitempty"`
}

type jsonWarning struct {
	Layer   int    `json:"layer"`
	Object  int    `json:"object"`
	Message string `json:"message"`
}

// WriteJSON renders the tree as JSON. Pretty output is indented with two
// spaces, matching what the editor-side tooling expects.
func WriteJSON(w io.Writer, g *lgb.LGB, pretty bool) error {
	doc := buildDocument(g)

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding layer group: %w", err)
	}
	return nil
}

func buildDocument(g *lgb.LGB) jsonDocument {
	doc := jsonDocument{
		Magic:   g.Header.Magic,
		GroupID: g.Chunk.GroupID,
		Name:    g.Chunk.Name,
		Layers:  make([]jsonLayer, 0, len(g.Layers)),
	}

	for _, layer := range g.Layers {
		jl := jsonLayer{
			ID:          layer.ID,
			Name:        layer.Name,
			ToolVisible: layer.ToolVisible,
			Decorative:  layer.IsDecorative,
			Placeholder: layer.Placeholder,
			Note:        layer.Note,
			Objects:     make([]jsonObject, 0, len(layer.Objects)),
		}
		for _, obj := range layer.Objects {
			t := obj.Transform
			jl.Objects = append(jl.Objects, jsonObject{
				Type:        obj.Type.String(),
				InstanceID:  obj.InstanceID,
				Name:        obj.Name,
				Translation: [3]float32{t.Translation.X, t.Translation.Y, t.Translation.Z},
				Rotation:    [4]float32{t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W},
				Scale:       [3]float32{t.Scale.X, t.Scale.Y, t.Scale.Z},
				Payload:     obj.Payload,
				Placeholder: obj.Placeholder,
				Note:        obj.Note,
			})
		}
		doc.Layers = append(doc.Layers, jl)
	}

	for _, warning := range g.Warnings {
		doc.Warnings = append(doc.Warnings, jsonWarning{
			Layer:   warning.Layer,
			Object:  warning.Object,
			Message: warning.Message,
		})
	}

	return doc
}

// WriteSummary prints a human-readable overview: group identity, layer
// and object counts, objects per asset type, and any decode warnings.
func WriteSummary(w io.Writer, g *lgb.LGB) error {
	fmt.Fprintf(w, "Group:    %s (id %d)\n", g.Chunk.Name, g.Chunk.GroupID)
	fmt.Fprintf(w, "Layers:   %d\n", len(g.Layers))
	fmt.Fprintf(w, "Objects:  %d\n", g.ObjectCount())

	counts := g.CountByType()
	if len(counts) > 0 {
		types := make([]lgb.AssetType, 0, len(counts))
		for t := range counts {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, t := range types {
			fmt.Fprintf(tw, "  %s\t%d\n", t, counts[t])
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(g.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings: %d\n", len(g.Warnings))
		for _, warning := range g.Warnings {
			fmt.Fprintf(w, "  %s\n", warning.String())
		}
	}

	return nil
}
