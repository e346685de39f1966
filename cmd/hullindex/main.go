// Command hullindex reads a JSON document of 2D convex hulls, builds an
// R-tree over their bounding boxes, and prints either the pairwise
// intersections or the serialized tree.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rkeat/hullrtree/codec"
	"github.com/rkeat/hullrtree/config"
	"github.com/rkeat/hullrtree/geom"
	"github.com/rkeat/hullrtree/hull"
	"github.com/rkeat/hullrtree/pairwise"
	"github.com/rkeat/hullrtree/rtree"
)

func main() {
	app := &cli.App{
		Name:      "hullindex",
		Usage:     "find pairwise intersections among 2D convex hulls using an R-tree index",
		ArgsUsage: "<hulls.json>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "m", Value: 2, Usage: "minimum entries per R-tree node"},
			&cli.IntFlag{Name: "M", Value: 8, Usage: "maximum entries per R-tree node"},
			&cli.Float64Flag{Name: "eps", Value: geom.Tolerance, Usage: "geometric comparison tolerance"},
			&cli.BoolFlag{Name: "tree", Usage: "print the serialized R-tree instead of pairwise intersections"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("usage: hullindex [options] <hulls.json>", 1)
	}

	cfg, err := config.New(config.WithFanout(c.Int("m"), c.Int("M")), config.WithTolerance(c.Float64("eps")))
	if err != nil {
		return err
	}
	cfg.Apply()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := codec.DecodeHullDocument(f)
	if err != nil {
		return err
	}

	hulls := make([]*hull.ConvexHull, len(doc.ConvexHulls))
	boxes := make([]geom.BoundingBox, len(doc.ConvexHulls))
	for i, rec := range doc.ConvexHulls {
		h, err := hull.New(rec.Points())
		if err != nil {
			return fmt.Errorf("hull %d: %w", rec.ID, err)
		}
		hulls[i] = h
		boxes[i] = h.BoundingBox()
	}

	m, M := cfg.Params.Min, cfg.Params.Max

	if c.Bool("tree") {
		t, err := pairwise.BuildIndex(m, M, boxes)
		if err != nil {
			return err
		}
		printTree(t.Serialize(), 0)
		return nil
	}

	pairs, err := pairwise.FindPairwiseIntersections(m, M, boxes, hulls)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		fmt.Printf("%d %d\n", p.I, p.J)
	}
	return nil
}

func printTree(n rtree.SerializedNode, level int) {
	fmt.Printf("%sNode %d BB: [(%.2f, %.2f) (%.2f, %.2f)]\n",
		strings.Repeat("    ", level), n.Value, n.BB[0], n.BB[1], n.BB[2], n.BB[3])
	for _, child := range n.Children {
		printTree(child, level+1)
	}
}
