// Package nodelink renders colored graphs as node-link diagrams.
//
// # Overview
//
// Each vertex becomes a filled circle whose fill is taken from a palette by
// color index, and each edge becomes an undirected line. The result is a
// direct visual check of a coloring: no line may join two circles of the same
// fill.
//
// # Usage
//
// Convert a graph and coloring to DOT, then render:
//
//	dot := nodelink.ToDOT(g, c, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Palette
//
// [DefaultPalette] holds twelve qualitative fills. Colorings that need more
// get extra fills spread around the hue circle by [Palette.Fill], so any
// color count renders with distinct fills.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering, and [github.com/lucasb-eyer/go-colorful] for generated
// palette entries.
package nodelink
