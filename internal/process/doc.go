// Package process stops browser processes left behind by a launcher.
package process
