package validation

import "testing"

func TestImageExt(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantExt  string
		wantOK   bool
	}{
		{"Lowercase jpg", "cover.jpg", "jpg", true},
		{"Lowercase jpeg", "cover.jpeg", "jpeg", true},
		{"Lowercase png", "cover.png", "png", true},
		{"Uppercase PNG", "cover.PNG", "png", true},
		{"Mixed case", "cover.JpG", "jpg", true},
		{"Gif rejected", "cover.gif", "gif", false},
		{"Webp rejected", "cover.webp", "webp", false},
		{"No extension", "cover", "", false},
		{"Trailing dot", "cover.", "", false},
		{"Multiple dots", "my.book.cover.png", "png", true},
		{"Empty filename", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := ImageExt(tt.filename)
			if ok != tt.wantOK {
				t.Errorf("ImageExt(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
			if ok && ext != tt.wantExt {
				t.Errorf("ImageExt(%q) = %q, want %q", tt.filename, ext, tt.wantExt)
			}
		})
	}
}

func TestLocalPart(t *testing.T) {
	tests := []struct {
		name     string
		identity string
		expected string
	}{
		{"Plain email", "yakup15@example.com", "yakup15"},
		{"Subdomain email", "a@mail.example.com", "a"},
		{"Admin sentinel", "__admin__", "__admin__"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalPart(tt.identity); got != tt.expected {
				t.Errorf("LocalPart(%q) = %q, want %q", tt.identity, got, tt.expected)
			}
		})
	}
}

func TestTrimAndLimit(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		max      int
		expected string
	}{
		{"Trims whitespace", "  Dune  ", 255, "Dune"},
		{"Truncates long input", "abcdef", 4, "abcd"},
		{"No limit when zero", "abcdef", 0, "abcdef"},
		{"Short input untouched", "abc", 255, "abc"},
		{"Empty", "   ", 255, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndLimit(tt.s, tt.max); got != tt.expected {
				t.Errorf("TrimAndLimit(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.expected)
			}
		})
	}
}

func TestFormInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantNil bool
		wantN   int
		wantOK  bool
	}{
		{"Empty is nil", "", true, 0, true},
		{"Whitespace is nil", "  ", true, 0, true},
		{"Valid int", "412", false, 412, true},
		{"Zero", "0", false, 0, true},
		{"Negative", "-3", false, -3, true},
		{"Malformed", "abc", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := FormInt(tt.value)
			if ok != tt.wantOK {
				t.Errorf("FormInt(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if (n == nil) != tt.wantNil {
				t.Errorf("FormInt(%q) nil = %v, want %v", tt.value, n == nil, tt.wantNil)
			}
			if n != nil && *n != tt.wantN {
				t.Errorf("FormInt(%q) = %d, want %d", tt.value, *n, tt.wantN)
			}
		})
	}
}
