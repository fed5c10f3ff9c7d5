package backend

import (
	"fmt"
	"regexp"
	"strconv"
)

var qubitLabelDigits = regexp.MustCompile(`\d+`)

// ParseQubitMapping converts a virtual-qubit-to-device-label mapping such as
// {0: "QB1", 1: "QB3"} into a zero-based initial layout {0: 0, 1: 2}. Device
// labels are one-based, so the numeric suffix is reduced by one. A label
// with no digits is an invalid-input error naming the label.
func ParseQubitMapping(mapping map[int]string) (map[int]int, error) {
	layout := make(map[int]int, len(mapping))
	for virtual, label := range mapping {
		digits := qubitLabelDigits.FindString(label)
		if digits == "" {
			return nil, fmt.Errorf("%w: qubit label %q has no numeric suffix", ErrInvalidInput, label)
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return nil, fmt.Errorf("%w: qubit label %q: %v", ErrInvalidInput, label, err)
		}
		layout[virtual] = n - 1
	}
	return layout, nil
}
