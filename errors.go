package spart

import "github.com/cockroachdb/errors"

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

func newUnknownAlgorithmError(name string) error {
	return errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}
