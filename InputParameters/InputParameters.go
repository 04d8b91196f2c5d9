package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/nodalbasis/shapes"
)

// GenerationRequest is read from a YAML request file. ghodss/yaml maps YAML
// onto the json field tags.
type GenerationRequest struct {
	Title          string           `json:"Title"`
	ParallelDegree int              `json:"ParallelDegree"`
	Detail         bool             `json:"Detail"`
	Elements       []ElementRequest `json:"Elements"`
	GmshTypes      []int            `json:"GmshTypes"` // gmsh element type numbers, added to Elements
}

// ElementRequest names one shape and the orders to build for it. MinOrder
// and MaxOrder give a range used when Orders is empty.
type ElementRequest struct {
	Shape       string `json:"Shape"`
	Orders      []int  `json:"Orders"`
	MinOrder    int    `json:"MinOrder"`
	MaxOrder    int    `json:"MaxOrder"`
	Serendipity bool   `json:"Serendipity"`
}

func (gr *GenerationRequest) Parse(data []byte) error {
	return yaml.Unmarshal(data, gr)
}

// Tags expands the request into element tags in request order, duplicates
// removed
func (gr *GenerationRequest) Tags() (tags []shapes.Tag, err error) {
	seen := make(map[int]bool)
	add := func(t shapes.Tag) error {
		if err := t.Validate(); err != nil {
			return err
		}
		t = t.Canonical()
		if !seen[t.Encode()] {
			seen[t.Encode()] = true
			tags = append(tags, t)
		}
		return nil
	}
	for i, er := range gr.Elements {
		var s shapes.Shape
		if s, err = shapes.Parse(er.Shape); err != nil {
			return nil, fmt.Errorf("element request %d: %w", i, err)
		}
		orders := er.Orders
		if len(orders) == 0 {
			if er.MaxOrder < er.MinOrder {
				return nil, fmt.Errorf("element request %d: %w: order range [%d,%d]",
					i, shapes.ErrUnknownTag, er.MinOrder, er.MaxOrder)
			}
			for p := er.MinOrder; p <= er.MaxOrder; p++ {
				orders = append(orders, p)
			}
		}
		for _, p := range orders {
			if err = add(shapes.Tag{Shape: s, Order: p, Serendipity: er.Serendipity}); err != nil {
				return nil, fmt.Errorf("element request %d: %w", i, err)
			}
		}
	}
	for _, et := range gr.GmshTypes {
		var t shapes.Tag
		if t, err = shapes.FromGmsh(et); err != nil {
			return nil, err
		}
		if err = add(t); err != nil {
			return nil, err
		}
	}
	return
}

func (gr *GenerationRequest) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", gr.Title)
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", gr.ParallelDegree)
	for _, er := range gr.Elements {
		if len(er.Orders) != 0 {
			fmt.Printf("%s%v\tserendipity=%v\n", er.Shape, er.Orders, er.Serendipity)
			continue
		}
		fmt.Printf("%s[%d..%d]\tserendipity=%v\n", er.Shape, er.MinOrder, er.MaxOrder, er.Serendipity)
	}
	if len(gr.GmshTypes) != 0 {
		fmt.Printf("gmsh types %v\n", gr.GmshTypes)
	}
}
