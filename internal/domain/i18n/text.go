package i18n

// Text is a value holding parallel Dutch and English strings. Either side may be absent.
// A Text is never mutated in place; With and Copy return new values.
type Text struct {
	nl *string
	en *string
}

// NewText builds a Text from optional values. Empty strings count as absent.
func NewText(nl, en *string) Text {
	return Text{nl: normalize(nl), en: normalize(en)}
}

// FromStrings builds a Text from plain strings, treating "" as absent.
func FromStrings(nl, en string) Text {
	return NewText(&nl, &en)
}

// Get returns the value for l, falling back to the other language when l is absent.
// It returns nil only when both languages are absent.
func (t Text) Get(l Locale) (*string, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if v := t.exact(l); v != nil {
		return v, nil
	}
	return t.exact(l.Other()), nil
}

// Exact returns the raw value for l without fallback (may be nil).
func (t Text) Exact(l Locale) (*string, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return t.exact(l), nil
}

// String resolves t for l with fallback and returns "" when nothing is set or l is unsupported.
func (t Text) String(l Locale) string {
	v, err := t.Get(l)
	if err != nil || v == nil {
		return ""
	}
	return *v
}

// Has reports whether the exact value for l is present.
func (t Text) Has(l Locale) bool {
	return t.exact(l) != nil
}

// IsEmpty reports whether neither language is set.
func (t Text) IsEmpty() bool {
	return t.nl == nil && t.en == nil
}

// With returns a copy of t with the value for l replaced.
func (t Text) With(l Locale, v *string) Text {
	c := t.Copy()
	switch l {
	case Dutch:
		c.nl = normalize(v)
	case English:
		c.en = normalize(v)
	}
	return c
}

// Copy returns an independent copy of t.
func (t Text) Copy() Text {
	return Text{nl: clone(t.nl), en: clone(t.en)}
}

// NL and EN expose the raw columns for persistence and bilingual projections.
func (t Text) NL() *string { return clone(t.nl) }
func (t Text) EN() *string { return clone(t.en) }

func (t Text) exact(l Locale) *string {
	if l == English {
		return clone(t.en)
	}
	return clone(t.nl)
}

func normalize(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return clone(v)
}

func clone(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
