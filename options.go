package bluenoise

// Option configures a Ditherer during creation.
//
// Example:
//
//	m, _ := bluenoise.LoadMask("noise128.png")
//	d := bluenoise.New(bluenoise.WithMask(m))
type Option func(*options)

type options struct {
	mask *Mask
}

// WithMask sets the threshold mask. A nil mask selects DefaultMask.
func WithMask(m *Mask) Option {
	return func(o *options) {
		o.mask = m
	}
}
