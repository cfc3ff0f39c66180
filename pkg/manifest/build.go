package manifest

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/operator-framework/boundcheck/pkg/constraints"
	"github.com/operator-framework/boundcheck/pkg/lib/codec"
	"github.com/operator-framework/boundcheck/pkg/model"
)

type boundaryDeclaration[T constraints.Value[T]] struct {
	ID     constraints.VariableID `mapstructure:"id"`
	Top    *constraints.Limit[T]  `mapstructure:"top"`
	Bottom *constraints.Limit[T]  `mapstructure:"bottom"`
}

type fixedDeclaration[T constraints.Value[T]] struct {
	ID    constraints.VariableID `mapstructure:"id"`
	Value T                      `mapstructure:"value"`
}

type linearDeclaration[T constraints.Value[T]] struct {
	Left       constraints.VariableID `mapstructure:"left"`
	Right      constraints.VariableID `mapstructure:"right"`
	Multiplier *T                     `mapstructure:"multiplier"`
	Offset     *T                     `mapstructure:"offset"`
	Comparator constraints.Comparator `mapstructure:"comparator"`
}

// Build declares every constraint of the manifest on m, in order. It
// stops at the first declaration that cannot be decoded or is
// rejected; constraints declared before it stay in m.
func Build[T constraints.Affine[T, T, T]](mf *Manifest, m *model.Model[T, T, T]) error {
	for i, d := range mf.Constraints {
		if err := declare(d, m); err != nil {
			return errors.Wrapf(err, "constraint %d (%s)", i, d.Type)
		}
	}
	return nil
}

func declare[T constraints.Affine[T, T, T]](d Declaration, m *model.Model[T, T, T]) error {
	switch d.Type {
	case BoundaryType:
		var b boundaryDeclaration[T]
		if err := decode[T](d.Value, &b); err != nil {
			return err
		}
		_, err := m.AddBoundary(b.ID, b.Top, b.Bottom)
		return err
	case FixedType:
		var f fixedDeclaration[T]
		if err := decode[T](d.Value, &f); err != nil {
			return err
		}
		m.AddFixed(f.ID, f.Value)
		return nil
	case LinearType:
		l := linearDeclaration[T]{Comparator: constraints.LessOrEqual}
		if err := decode[T](d.Value, &l); err != nil {
			return err
		}
		if l.Left >= l.Right {
			return errors.Errorf("left variable %s must have a smaller id than right variable %s", l.Left, l.Right)
		}
		m.AddLinear(l.Left, l.Right, l.Multiplier, l.Offset, l.Comparator)
		return nil
	}
	return errors.Errorf("unknown type %q", d.Type)
}

func decode[T constraints.Value[T]](in map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			codec.ComparatorHookFunc(),
			codec.LimitHookFunc[T](),
		),
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}
