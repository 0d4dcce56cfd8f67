package domain

import (
	"slices"
	"strings"
)

// Output formats understood by markup compilers.
const (
	FormatHTML5 = "html5"
	FormatXHTML = "xhtml"
	FormatHTML4 = "html4"
)

// defaultAutoclose lists the void elements closed automatically by default.
var defaultAutoclose = []string{"meta", "img", "link", "br", "hr", "input", "area", "param", "col", "base"}

// CompileOptions configures the external markup compiler.
// It is an immutable value: the zero value is not useful, build one with
// DefaultCompileOptions and Merge.
type CompileOptions struct {
	format        string
	enableEscaper bool
	escapeHTML    bool
	escapeAttrs   bool
	autoclose     []string
	charset       string
}

// OptionOverrides carries per-theme overrides. Nil fields keep the default.
type OptionOverrides struct {
	Format        *string
	EnableEscaper *bool
	EscapeHTML    *bool
	EscapeAttrs   *bool
	Autoclose     []string
	Charset       *string
}

// DefaultCompileOptions returns the compiler defaults.
func DefaultCompileOptions() CompileOptions {
	return CompileOptions{
		format:    FormatHTML5,
		autoclose: normalizeTags(defaultAutoclose),
		charset:   "UTF-8",
	}
}

// Merge returns a copy of o with every non-nil override applied.
// A non-nil Autoclose replaces the whole set.
func (o CompileOptions) Merge(ov OptionOverrides) CompileOptions {
	merged := o
	merged.autoclose = slices.Clone(o.autoclose)

	if ov.Format != nil {
		merged.format = strings.TrimSpace(*ov.Format)
	}
	if ov.EnableEscaper != nil {
		merged.enableEscaper = *ov.EnableEscaper
	}
	if ov.EscapeHTML != nil {
		merged.escapeHTML = *ov.EscapeHTML
	}
	if ov.EscapeAttrs != nil {
		merged.escapeAttrs = *ov.EscapeAttrs
	}
	if ov.Autoclose != nil {
		merged.autoclose = normalizeTags(ov.Autoclose)
	}
	if ov.Charset != nil {
		merged.charset = strings.TrimSpace(*ov.Charset)
	}

	return merged
}

// Format returns the output dialect.
func (o CompileOptions) Format() string { return o.format }

// EnableEscaper reports whether the compiler escaper is enabled.
func (o CompileOptions) EnableEscaper() bool { return o.enableEscaper }

// EscapeHTML reports whether interpolated HTML is escaped.
func (o CompileOptions) EscapeHTML() bool { return o.escapeHTML }

// EscapeAttrs reports whether attribute values are escaped.
func (o CompileOptions) EscapeAttrs() bool { return o.escapeAttrs }

// Charset returns the character encoding.
func (o CompileOptions) Charset() string { return o.charset }

// Autoclose returns a sorted copy of the auto-closing tag set.
func (o CompileOptions) Autoclose() []string { return slices.Clone(o.autoclose) }

// IsAutoclose reports whether tag is closed automatically.
func (o CompileOptions) IsAutoclose(tag string) bool {
	_, found := slices.BinarySearch(o.autoclose, strings.ToLower(tag))
	return found
}

// Equal reports whether both option sets configure the compiler identically.
func (o CompileOptions) Equal(other CompileOptions) bool {
	return o.format == other.format &&
		o.enableEscaper == other.enableEscaper &&
		o.escapeHTML == other.escapeHTML &&
		o.escapeAttrs == other.escapeAttrs &&
		o.charset == other.charset &&
		slices.Equal(o.autoclose, other.autoclose)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
