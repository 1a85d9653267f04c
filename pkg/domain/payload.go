package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodePayload decodes an action payload into a typed struct using
// mapstructure tags. It gives pipe authors typed access to the
// JSON-like payload without hand-written map plumbing.
func DecodePayload(action Action, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build payload decoder: %w", err)
	}
	if err := decoder.Decode(action.Payload); err != nil {
		return fmt.Errorf("failed to decode payload for action %q: %w", action.Name, err)
	}
	return nil
}
