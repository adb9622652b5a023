// Package render turns sampled 2D signed distance fields into text, raster
// images and plots.
//
// All renderers sample the field over a sdfield.Domain and apply a mapper
// to every cell of the resulting matrix. Matrix index x runs along image
// columns and text characters, index y along image rows and text lines.
package render
