package main

import (
	"fmt"

	"github.com/spf13/cobra"

	rtree "github.com/peterstace/polyrtree"
	"github.com/peterstace/polyrtree/internal/geoload"
)

const defaultMaxKeys = 8

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		pretty   bool
	)
	root := &cobra.Command{
		Use:          "polyindex",
		Short:        "Build an R-tree over GeoJSON polygons",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&pretty, "pretty", false, "Human readable log output")

	var maxKeys int
	build := &cobra.Command{
		Use:   "build <dir>",
		Short: "Insert every polygon found in dir/*.geojson and print tree stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newZeroLogger(cmd.ErrOrStderr(), logLevel, pretty)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			return runBuild(cmd, args[0], maxKeys, log)
		},
	}
	build.Flags().IntVar(&maxKeys, "max-keys", defaultMaxKeys, "Maximum children per node (at least 3)")
	root.AddCommand(build)
	return root
}

func runBuild(cmd *cobra.Command, dir string, maxKeys int, log rtree.Logger) error {
	tree, err := rtree.New(maxKeys, rtree.WithLogger(log))
	if err != nil {
		return err
	}

	res, err := geoload.LoadDir(dir, log)
	if err != nil {
		return err
	}
	var rejected int
	for _, p := range res.Polygons {
		if err := tree.Insert(rtree.OrbPolygon{Polygon: p}); err != nil {
			log.Warn("rejected polygon", "error", err)
			rejected++
		}
	}

	s := tree.Stats()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "polygons:     %d\n", s.Polygons)
	fmt.Fprintf(out, "rejected:     %d\n", rejected)
	fmt.Fprintf(out, "skipped:      %d\n", res.Skipped)
	fmt.Fprintf(out, "height:       %d\n", s.Height)
	fmt.Fprintf(out, "nodes:        %d\n", s.Nodes)
	fmt.Fprintf(out, "fill:         %d-%d of %d\n", s.MinFill, s.MaxFill, maxKeys)
	if bb, ok := tree.Bounds(); ok {
		fmt.Fprintf(out, "bounds:       %v %v\n", bb.LeftTop, bb.RightBottom)
	}
	return nil
}
