// Package analysis computes summary statistics over generation
// results: luminance histograms for rasters, box-counting dimension
// estimates for point clouds and outlines, and stroke statistics for
// outlines.
package analysis
