// Package domain holds the error taxonomy shared by the loader, the
// interpolator and the writers.
package domain
