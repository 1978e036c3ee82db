package vocab

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-lexbool/lexbool"
)

// decodeDefinition decodes the flattened koanf tree into a Definition using
// the package decode hooks.
func (c *Container) decodeDefinition() (*Definition, error) {
	out := &Definition{}
	if err := DecodeInto(c.K.Raw(), out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeInto decodes input (typically a nested map from a koanf tree) into
// target with the package hook chain: text unmarshalers, LexicalBool fields
// resolved through v (the package default vocabulary when v is nil), and
// comma-split strings for slice fields. Extra hooks run after the built-in
// chain.
//
// This is the path for user config structs that carry lexbool.LexicalBool
// fields next to their own settings.
func DecodeInto(input, target any, v *lexbool.Vocabulary, hooks ...mapstructure.DecodeHookFunc) error {
	all := make([]mapstructure.DecodeHookFunc, 0, len(hooks)+3)
	all = append(all,
		textUnmarshalerDecodeHook(),
		LexicalBoolDecodeHook(v),
		mapstructure.StringToSliceHookFunc(","),
	)
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		all = append(all, hook)
	}

	config := &mapstructure.DecoderConfig{
		TagName:          "koanf",
		WeaklyTypedInput: true,
		Result:           target,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(all...),
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "failed to build decoder").
			WithTextCode("DECODER_CONFIG_FAILED")
	}
	if err := decoder.Decode(input); err != nil {
		return errors.Wrap(err, errors.CategoryOperation, "failed to decode input").
			WithTextCode("DECODE_FAILED")
	}
	return nil
}
