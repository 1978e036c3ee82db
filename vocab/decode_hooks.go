package vocab

import (
	"encoding"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-lexbool/lexbool"
)

var (
	lexicalBoolType    = reflect.TypeOf(lexbool.LexicalBool{})
	lexicalBoolPtrType = reflect.TypeOf(&lexbool.LexicalBool{})
)

// LexicalBoolDecodeHook normalises data destined for LexicalBool fields so
// sources can supply plain booleans or token strings. Strings resolve
// through v; a nil v falls back to the package default vocabulary.
func LexicalBoolDecodeHook(v *lexbool.Vocabulary) mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if !isLexicalBoolTarget(to) {
			return data, nil
		}

		if data == nil {
			if to == lexicalBoolPtrType {
				return (*lexbool.LexicalBool)(nil), nil
			}
			return lexbool.LexicalBool{}, nil
		}

		switch val := data.(type) {
		case *lexbool.LexicalBool:
			if val == nil {
				if to == lexicalBoolPtrType {
					return (*lexbool.LexicalBool)(nil), nil
				}
				return lexbool.LexicalBool{}, nil
			}
			if to == lexicalBoolPtrType {
				clone := *val
				return &clone, nil
			}
			return *val, nil
		case lexbool.LexicalBool:
			if to == lexicalBoolPtrType {
				clone := val
				return &clone, nil
			}
			return val, nil
		case bool:
			lb := lexbool.New(val)
			if to == lexicalBoolPtrType {
				return &lb, nil
			}
			return lb, nil
		case string:
			var lb lexbool.LexicalBool
			var err error
			if v != nil {
				lb, err = v.Parse(val)
			} else {
				lb, err = lexbool.Parse(val)
			}
			if err != nil {
				return nil, err
			}
			if to == lexicalBoolPtrType {
				return &lb, nil
			}
			return lb, nil
		default:
			return data, nil
		}
	}
}

func isLexicalBoolTarget(t reflect.Type) bool {
	return t == lexicalBoolType || t == lexicalBoolPtrType
}

// textUnmarshalerDecodeHook mirrors koanf's internal helper so we can compose
// hooks while still supporting custom encoding.Text(Un)Marshaler
// implementations.
func textUnmarshalerDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		// LexicalBool has its own hook wired with an explicit vocabulary
		if isLexicalBoolTarget(to) {
			return data, nil
		}
		result := reflect.New(to).Interface()
		unmarshaller, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return data, nil
		}

		dataVal := reflect.ValueOf(data)
		text := []byte(dataVal.String())
		if from.Kind() == to.Kind() {
			ptrVal := reflect.New(dataVal.Type())
			if ptrVal.Elem().CanSet() {
				ptrVal.Elem().Set(dataVal)
			}
			for _, candidate := range []reflect.Value{dataVal, ptrVal} {
				if marshaller, ok := candidate.Interface().(encoding.TextMarshaler); ok {
					marshaled, err := marshaller.MarshalText()
					if err != nil {
						return nil, err
					}
					text = marshaled
					break
				}
			}
		}

		if err := unmarshaller.UnmarshalText(text); err != nil {
			return nil, err
		}
		return result, nil
	}
}
