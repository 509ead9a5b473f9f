package sitemap

// DefaultDateTimeFormat is the time layout used for every timestamp, after conversion to UTC.
const DefaultDateTimeFormat = "2006-01-02T15:04:05Z"

// Options is used by Writer.
type Options struct {
	StrictValidation bool   // fail on the first invalid entry; otherwise drop invalid entries
	UseIndentation   bool   // pretty-print the XML
	DateTimeFormat   string // time layout (see package time) for lastmod and publication dates
}

// DefaultOptions is the default options used when calling NewWriter(nil).
var DefaultOptions = &Options{
	StrictValidation: true,
	DateTimeFormat:   DefaultDateTimeFormat,
}

// copyOptions returns a copy of opts, or of DefaultOptions if opts is nil.
func copyOptions(opts *Options) *Options {
	options := new(Options)
	if opts == nil {
		opts = DefaultOptions
	}
	*options = *opts
	if options.DateTimeFormat == "" {
		options.DateTimeFormat = DefaultDateTimeFormat
	}
	return options
}
