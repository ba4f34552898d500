package gust

import (
	"fmt"
	"reflect"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mitchellh/mapstructure"
)

// UnmarshalYAML decodes a parameter set and validates it, so a malformed
// wind profile is rejected at unmarshal time rather than at first use.
func (p *Params) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Params
	var raw plain
	if err := unmarshal(&raw); err != nil {
		return err
	}

	*p = Params(raw)
	return p.Validate()
}

// GetDecodeHook returns a decodeHook function that can be used to unmarshal
// Params using mapstructure. This supports configuration solutions like
// spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		vec3DecodeHookFunc(),
		paramsDecodeHookFunc(),
	)
}

// Returns a DecodeHookFunc that converts a three-element sequence into an
// mgl64.Vec3.
func vec3DecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(mgl64.Vec3{}) {
			return data, nil
		}

		seq, ok := data.([]interface{})
		if !ok {
			return data, nil
		}
		if len(seq) != 3 {
			return nil, fmt.Errorf("expected 3 vector components, got %d", len(seq))
		}

		var v mgl64.Vec3
		for i, c := range seq {
			switch n := c.(type) {
			case float64:
				v[i] = n
			case int:
				v[i] = float64(n)
			default:
				return nil, fmt.Errorf("vector component %d is not a number: %v", i, c)
			}
		}
		return v, nil
	}
}

// Returns a DecodeHookFunc that decodes a map into Params and validates it.
func paramsDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(Params{}) {
			return data, nil
		}

		m, ok := data.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("expected map[string]interface{}, got %T", data)
		}

		var params Params
		decoderConfig := &mapstructure.DecoderConfig{
			DecodeHook: vec3DecodeHookFunc(),
			Result:     &params,
		}
		decoder, err := mapstructure.NewDecoder(decoderConfig)
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(m); err != nil {
			return nil, err
		}

		if err := params.Validate(); err != nil {
			return nil, err
		}
		return params, nil
	}
}
