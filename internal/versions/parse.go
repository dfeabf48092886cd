package versions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/capigen/internal/model"
	"golang.org/x/mod/semver"
)

// Parse reads a strict "v<major>.<minor>.<patch>" version string. Shorthand
// forms such as "v1.0", prerelease and build suffixes are rejected.
func Parse(s string) (model.Version, error) {
	if !semver.IsValid(s) || semver.Canonical(s) != s || semver.Prerelease(s) != "" {
		return model.Version{}, fmt.Errorf("%q is not of the form vMAJOR.MINOR.PATCH", s)
	}

	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return model.Version{}, fmt.Errorf("%q: segment %q is not a valid integer", s, part)
		}
		nums[i] = n
	}
	return model.Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
