// Package config loads run settings for the mirage executables.
//
// Settings come from three layers, later layers winning:
//
//  1. Default(): input.txt, next mode, one worker, quiet.
//
//  2. An optional HCL file.
//
//  3. Command-line flags set explicitly by the user (see internal/app).
//
// A settings file using every attribute:
//
//	input   = "histories.txt"
//	mode    = "previous"
//	workers = 4
//	verbose = true
//	stats   = false
//
// The HCL file is a flat body of attributes; blocks and unknown attribute
// names are rejected so typos surface instead of being ignored.
package config
