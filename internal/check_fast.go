//go:build fastgeom
// +build fastgeom

package internal

// Fast build profile: coordinate screening compiled out.

func checkFinite(op string, values ...float64) {}
