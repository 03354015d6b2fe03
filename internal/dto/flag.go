package dto

import "fmt"

// Flag is a boolean that also decodes from the 0/1 form used by the store.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case "true", "1":
		*f = true
	case "false", "0":
		*f = false
	default:
		return fmt.Errorf("invalid flag %s: want true, false, 0 or 1", b)
	}
	return nil
}
