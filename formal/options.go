package formal

// Option configures optional Context metadata at construction time.
type Option func(*contextOptions)

// contextOptions collects display metadata; algorithms never read it.
type contextOptions struct {
	name            string
	objectLabels    []string
	attributeLabels []string
}

// WithName attaches a display name (the name line of a .cxt file).
func WithName(name string) Option {
	return func(o *contextOptions) { o.name = name }
}

// WithObjectLabels attaches one label per object. The count is checked by
// the constructor and a mismatch is reported as ErrLabelCount.
func WithObjectLabels(labels ...string) Option {
	return func(o *contextOptions) { o.objectLabels = append([]string(nil), labels...) }
}

// WithAttributeLabels attaches one label per attribute. The count is checked
// by the constructor and a mismatch is reported as ErrLabelCount.
func WithAttributeLabels(labels ...string) Option {
	return func(o *contextOptions) { o.attributeLabels = append([]string(nil), labels...) }
}
