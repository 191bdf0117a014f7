package zvariant

// Dict is an insertion-ordered dictionary of dynamically typed
// key/value entries. Every entry is checked on the way in against the
// key/value signature pair fixed at construction, so a Dict always
// holds a homogeneous schema even though its entries are dynamic.
//
// A Dict is an ordered log, not a hash map: duplicate keys are legal,
// entries are never reordered, and there is no in-place update or
// removal. Callers wanting to replace a key filter and rebuild; callers
// wanting indexed lookup convert to a native map with DictToMap.
type Dict struct {
	entries []DictEntry
	keySig  Signature
	valSig  Signature
}

// DictEntry is a single key/value pair held by a Dict.
type DictEntry struct {
	Key   Value
	Value Value
}

// NewDict creates an empty dictionary with the given key and value
// signatures. No validation happens here; there are no entries yet.
func NewDict(keySig, valSig Signature) *Dict {
	return &Dict{keySig: keySig, valSig: valSig}
}

// KeySignature returns the declared key signature.
func (d *Dict) KeySignature() Signature { return d.keySig }

// ValueSignature returns the declared value signature.
func (d *Dict) ValueSignature() Signature { return d.valSig }

// Len returns the number of entries.
func (d *Dict) Len() int { return len(d.entries) }

// Entries returns the entries in insertion order. The slice is the
// dictionary's own storage; treat it as read-only.
func (d *Dict) Entries() []DictEntry { return d.entries }

// Signature returns the dictionary's full wire signature,
// a{<key><value>}, formatted fresh from the declared pair.
func (d *Dict) Signature() Signature {
	return Signature("a{" + string(d.keySig) + string(d.valSig) + "}")
}

// Append pushes a new entry. It fails with ErrIncorrectType, leaving
// the dictionary unchanged, unless key's own signature equals the
// declared key signature and value's equals the declared value
// signature.
func (d *Dict) Append(key, value Value) error {
	if ks := key.Signature(); ks != d.keySig {
		return incorrectType(d.keySig, ks)
	}
	if vs := value.Signature(); vs != d.valSig {
		return incorrectType(d.valSig, vs)
	}
	d.entries = append(d.entries, DictEntry{Key: key, Value: value})
	return nil
}

// Add wraps a natively typed pair and appends it. The registry
// signatures of K and V must equal the dictionary's declared pair. A
// free function because Go methods cannot take type parameters.
func Add[K BasicKey, V Basic](d *Dict, key K, value V) error {
	if sig := SignatureFor[K](); sig != d.keySig {
		return incorrectType(d.keySig, sig)
	}
	if sig := SignatureFor[V](); sig != d.valSig {
		return incorrectType(d.valSig, sig)
	}
	d.entries = append(d.entries, DictEntry{Key: New(key), Value: New(value)})
	return nil
}

// Get returns the value stored under key, or nil if no entry matches. Entries are scanned in insertion order and the FIRST
// matching key wins, even when a later entry repeats the key (unlike
// DictToMap, where native-map semantics make the last write win).
//
// The contract is strict: every scanned key must downcast to K, and the
// matched value to V. A dictionary declared over one type never legally
// holds an entry that fails this, so any failure poisons the whole call
// with ErrIncorrectType.
func Get[K BasicKey, V Basic](d *Dict, key K) (*V, error) {
	for i := range d.entries {
		ek, ok := downcast[K](d.entries[i].Key)
		if !ok {
			return nil, incorrectType(SignatureFor[K](), d.entries[i].Key.Signature())
		}
		if ek == key {
			ev, ok := downcast[V](d.entries[i].Value)
			if !ok {
				return nil, incorrectType(SignatureFor[V](), d.entries[i].Value.Signature())
			}
			return &ev, nil
		}
	}
	return nil, nil
}

// Clone returns a fully independent copy: the signatures and every
// entry's key and value are detached from any borrowed data.
func (d *Dict) Clone() *Dict {
	c := &Dict{
		keySig:  d.keySig,
		valSig:  d.valSig,
		entries: make([]DictEntry, len(d.entries)),
	}
	for i, e := range d.entries {
		c.entries[i] = DictEntry{Key: e.Key.Clone(), Value: e.Value.Clone()}
	}
	return c
}

// Equal reports whether two dictionaries declare the same signatures
// and hold structurally equal entries in the same order.
func (d *Dict) Equal(o *Dict) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.keySig != o.keySig || d.valSig != o.valSig || len(d.entries) != len(o.entries) {
		return false
	}
	for i := range d.entries {
		if !d.entries[i].Key.Equal(o.entries[i].Key) || !d.entries[i].Value.Equal(o.entries[i].Value) {
			return false
		}
	}
	return true
}

// DictFromMap builds a dictionary from a native map, inferring the
// key/value signatures from the registry. Entries are appended in the
// map's iteration order, which is unordered; callers needing
// deterministic wire output must Append in a chosen order instead.
func DictFromMap[K BasicKey, V Basic](m map[K]V) *Dict {
	d := NewDict(SignatureFor[K](), SignatureFor[V]())
	for k, v := range m {
		d.entries = append(d.entries, DictEntry{Key: New(k), Value: New(v)})
	}
	return d
}

// DictToMap converts d into a native map. Later entries with a
// duplicate key overwrite earlier ones. The conversion is
// all-or-nothing: the first entry whose key or value cannot be
// extracted as K/V fails the call and no partial map is returned.
func DictToMap[K BasicKey, V Basic](d *Dict) (map[K]V, error) {
	m := make(map[K]V, len(d.entries))
	for _, e := range d.entries {
		k, err := Extract[K](e.Key)
		if err != nil {
			return nil, err
		}
		v, err := Extract[V](e.Value)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}
