// SPDX-License-Identifier: MIT

// Package config loads YAML job files for the gbparams command.
//
// A job names the point group, the output fields, the classifier toggles,
// an optional CSL table, minimizer limits, worker settings, and either a
// list of boundaries or a sweep over plane normals at a fixed
// misorientation. Angles are given in degrees.
//
//	point_group: m3m
//	fields: [DisorAngl, Tilt(AM), Twist(AM), Sigma]
//	csl: {lattice: cubic, max_sigma: 29}
//	workers: 8
//	boundaries:
//	  - id: gb-1
//	    left: [0, 0, 0]
//	    right: [30, 0, 0]
//	    normal: [0, 0, 1]
//
// Parse rejects unknown keys and validates values with
// go-playground/validator; the typed accessors then convert the job into
// characterize, evaluate and gbcd inputs.
package config
