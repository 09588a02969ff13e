package sapientino

import "fmt"

// Encode packs an observation drawn from a list of discrete spaces into one
// integer, first component least significant. Observation-shaping wrappers
// use it to flatten multi-discrete observations.
func Encode(obs []int, sizes []int) (int, error) {
	if len(obs) != len(sizes) {
		return 0, fmt.Errorf("observation has %d components for %d spaces", len(obs), len(sizes))
	}
	if len(obs) == 0 {
		return 0, fmt.Errorf("empty observation")
	}
	for i, v := range obs {
		if v < 0 || v >= sizes[i] {
			return 0, fmt.Errorf("component %d value %d out of range [0,%d)", i, v, sizes[i])
		}
	}
	result := obs[0]
	shift := sizes[0]
	for i := 1; i < len(obs); i++ {
		result += obs[i] * shift
		shift *= sizes[i]
	}
	return result, nil
}

// Decode unpacks an integer produced by Encode back into its components.
func Decode(code int, sizes []int) ([]int, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("empty space list")
	}
	obs := make([]int, len(sizes))
	for i, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("space %d has non-positive size %d", i, size)
		}
		obs[i] = code % size
		code /= size
	}
	if code != 0 {
		return nil, fmt.Errorf("code out of range for spaces %v", sizes)
	}
	return obs, nil
}
