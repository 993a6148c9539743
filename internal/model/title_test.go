package model

import "testing"

// TestNormalizeTitle verifies canonicalization of surface-form titles.
func TestNormalizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "underscores become spaces",
			input: "Python_(programming_language)",
			want:  "Python (programming language)",
		},
		{
			name:  "whitespace runs collapse",
			input: "  Modern \t philosophy ",
			want:  "Modern philosophy",
		},
		{
			name:  "first letter is uppercased",
			input: "philosophy",
			want:  "Philosophy",
		},
		{
			name:  "already canonical title is untouched",
			input: "Georg Wilhelm Friedrich Hegel",
			want:  "Georg Wilhelm Friedrich Hegel",
		},
		{
			name:  "combining accent composes to NFC",
			input: "étude",
			want:  "Étude",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeTitle(tt.input); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalizeTitleIdempotent verifies that normalizing an already
// normalized title changes nothing.
func TestNormalizeTitleIdempotent(t *testing.T) {
	t.Parallel()

	titles := []string{
		"Python_(programming_language)",
		" spaced   out ",
		"philosophy",
		"Étude",
		"Knowledge",
		"Category theory",
		"",
	}

	for _, title := range titles {
		once := NormalizeTitle(title)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle is not idempotent for %q: first %q, second %q", title, once, twice)
		}
	}
}

// TestSameTitle verifies canonical equality between surface forms.
func TestSameTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "underscores and case match spaces",
			a:    "python_(programming_language)",
			b:    "Python (programming language)",
			want: true,
		},
		{
			name: "identical canonical titles match",
			a:    "Philosophy",
			b:    "Philosophy",
			want: true,
		},
		{
			name: "different articles do not match",
			a:    "Philosophy",
			b:    "Philology",
			want: false,
		},
		{
			name: "non-leading case is significant",
			a:    "Sliced Bread",
			b:    "Sliced bread",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SameTitle(tt.a, tt.b); got != tt.want {
				t.Errorf("SameTitle(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestIsMainspace verifies that every namespace prefix is rejected and that
// ordinary article titles pass.
func TestIsMainspace(t *testing.T) {
	t.Parallel()

	for _, prefix := range nonMainspacePrefixes {
		title := prefix + "Example"
		if IsMainspace(title) {
			t.Errorf("IsMainspace(%q) = true, want false", title)
		}
	}

	valid := []string{
		"Philosophy",
		"Python (programming language)",
		"Talkative",
		"File system",
		"Portals in fiction",
	}
	for _, title := range valid {
		if !IsMainspace(title) {
			t.Errorf("IsMainspace(%q) = false, want true", title)
		}
	}

	if IsMainspace("") {
		t.Error("IsMainspace(\"\") = true, want false")
	}
}
