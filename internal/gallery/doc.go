package gallery

// Package gallery exports tagged images as a Foundry VTT Character Gallery
// datasheet: one entry per image with label, key, art paths and grouped tags.
