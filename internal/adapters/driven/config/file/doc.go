// Package file stores hdcat settings in ~/.hdcat/config.toml. Dotted keys
// map to TOML tables, so "view.mode" is written as mode under [view].
package file
