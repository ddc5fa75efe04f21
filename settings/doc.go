// Package settings supplies the two generation tunables: wall probability
// and erosion iteration count.
//
// Raw text that is missing or not a number silently becomes the documented
// default (cave.DefaultWallProbability, cave.DefaultIterations). This is a
// fallback branch, not an error. Only real I/O failures are reported.
//
// Prompter reads answers line by line from any io.Reader; end of input is
// an empty answer.
package settings
