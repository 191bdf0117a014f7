package zvariant

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// ============================================================
// cty Bridge
// ============================================================
//
// Converts between variant values and cty values (the dynamic value
// system used by HCL-based tooling), so configuration trees can flow
// into the wire format and back. Rules:
//   - Integers and floats map to cty.Number; on the way back, whole
//     numbers become i64 and everything else f64.
//   - A boxed variant unboxes to its payload.
//   - Only string-keyed dictionaries are representable: a dict over a
//     non-"v" value signature becomes a cty map (its single declared
//     value signature matches cty map homogeneity), a dict over "v"
//     becomes a cty object.

// ToCty converts a variant value to a cty value.
func ToCty(v Value) (cty.Value, error) {
	switch v.kind {
	case KindBool:
		return cty.BoolVal(v.boolVal), nil
	case KindU8, KindU16, KindU32, KindU64:
		return cty.NumberUIntVal(v.uintVal), nil
	case KindI16, KindI32, KindI64:
		return cty.NumberIntVal(v.intVal), nil
	case KindF64:
		return cty.NumberFloatVal(v.floatVal), nil
	case KindStr:
		return cty.StringVal(v.str()), nil
	case KindVariant:
		return ToCty(*v.variantVal)
	case KindDict:
		return dictToCty(v.dictVal)
	default:
		return cty.NilVal, fmt.Errorf("cty bridge: unsupported kind %s", v.kind)
	}
}

func dictToCty(d *Dict) (cty.Value, error) {
	if d.keySig != descStr.sig {
		return cty.NilVal, fmt.Errorf("cty bridge: only string-keyed dicts convert, got key signature %q", d.keySig)
	}
	if len(d.entries) == 0 {
		et, err := ctyTypeFor(d.valSig)
		if err != nil {
			return cty.NilVal, err
		}
		return cty.MapValEmpty(et), nil
	}
	m := make(map[string]cty.Value, len(d.entries))
	for _, e := range d.entries {
		k, err := Extract[string](e.Key)
		if err != nil {
			return cty.NilVal, err
		}
		cv, err := ToCty(e.Value)
		if err != nil {
			return cty.NilVal, fmt.Errorf("entry %q: %w", k, err)
		}
		m[k] = cv
	}
	if d.valSig == "v" {
		// Boxed values unbox to differing cty types; an object carries
		// the heterogeneity a cty map cannot.
		return cty.ObjectVal(m), nil
	}
	return cty.MapVal(m), nil
}

// ctyTypeFor maps a value signature to the cty element type used for
// empty maps.
func ctyTypeFor(sig Signature) (cty.Type, error) {
	if len(sig) == 1 {
		switch sig[0] {
		case 'b':
			return cty.Bool, nil
		case 'y', 'n', 'q', 'i', 'u', 'x', 't', 'd':
			return cty.Number, nil
		case 's':
			return cty.String, nil
		case 'v':
			return cty.DynamicPseudoType, nil
		}
	}
	if len(sig) > 4 && sig[0] == 'a' && sig[1] == '{' && sig[2] == 's' {
		et, err := ctyTypeFor(sig[3 : len(sig)-1])
		if err != nil {
			return cty.NilType, err
		}
		return cty.Map(et), nil
	}
	return cty.NilType, fmt.Errorf("cty bridge: no cty equivalent for signature %q", sig)
}

// FromCty converts a cty value to a variant value. Whole numbers become
// i64, other numbers f64; maps and objects become string-keyed dicts.
func FromCty(cv cty.Value) (Value, error) {
	if cv.IsNull() {
		return Value{}, fmt.Errorf("cty bridge: null has no variant representation")
	}
	t := cv.Type()
	switch {
	case t.Equals(cty.Bool):
		return Bool(cv.True()), nil
	case t.Equals(cty.String):
		return Str(cv.AsString()), nil
	case t.Equals(cty.Number):
		bf := cv.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return I64(i), nil
		}
		f, _ := bf.Float64()
		return F64(f), nil
	case t.IsMapType() || t.IsObjectType():
		return fromCtyMap(cv)
	default:
		return Value{}, fmt.Errorf("cty bridge: unsupported cty type %s", t.FriendlyName())
	}
}

func fromCtyMap(cv cty.Value) (Value, error) {
	type pair struct {
		key string
		val Value
	}
	var pairs []pair
	for it := cv.ElementIterator(); it.Next(); {
		k, ev := it.Element()
		pv, err := FromCty(ev)
		if err != nil {
			return Value{}, fmt.Errorf("element %q: %w", k.AsString(), err)
		}
		pairs = append(pairs, pair{key: k.AsString(), val: pv})
	}

	// Use the concrete value signature when all elements share one
	// (cty maps always do, objects often do); box otherwise. Empty
	// collections get "v" since no element pins a type.
	valSig := Signature("v")
	uniform := len(pairs) > 0
	for _, p := range pairs {
		if p.val.Signature() != pairs[0].val.Signature() {
			uniform = false
			break
		}
	}
	if uniform {
		valSig = pairs[0].val.Signature()
	}

	d := NewDict(descStr.sig, valSig)
	for _, p := range pairs {
		v := p.val
		if !uniform {
			v = Variant(v)
		}
		if err := d.Append(Str(p.key), v); err != nil {
			return Value{}, err
		}
	}
	return DictVal(d), nil
}
