package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrVersionMismatch is returned when the running aocgen does not satisfy
// the workspace's requires constraint.
var ErrVersionMismatch = errors.New("aocgen version does not satisfy requires")

// CheckRequires reports whether version satisfies constraint. An empty
// constraint always passes, as does a development build whose version is
// not a semver string.
func CheckRequires(constraint, version string) error {
	if strings.TrimSpace(constraint) == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil
	}

	if ok, errs := c.Validate(v); !ok {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return fmt.Errorf("%w %q: %s", ErrVersionMismatch, constraint, strings.Join(msgs, "; "))
	}
	return nil
}
