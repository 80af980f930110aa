package crypto

import "testing"

func TestClassContains(t *testing.T) {
	tests := []struct {
		class Class
		in    byte
		out   byte
	}{
		{Lowercase, 'q', 'Q'},
		{Uppercase, 'Q', 'q'},
		{Digit, '7', 'x'},
		{Symbol, '\\', 'a'},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			if !tt.class.Contains(tt.in) {
				t.Errorf("%s should contain %q", tt.class, tt.in)
			}
			if tt.class.Contains(tt.out) {
				t.Errorf("%s should not contain %q", tt.class, tt.out)
			}
		})
	}
}

func TestTagsCrossClasses(t *testing.T) {
	// '0' is a digit carrying both tags; 'O' is an uppercase ambiguous vowel.
	if !Ambiguous.Has('0') || !Vowel.Has('0') {
		t.Error("'0' should be tagged ambiguous and vowel")
	}
	if !Uppercase.Contains('O') || !Ambiguous.Has('O') || !Vowel.Has('O') {
		t.Error("'O' should be uppercase, ambiguous and vowel")
	}
	if Ambiguous.Has('a') {
		t.Error("'a' should not be ambiguous")
	}
}

func TestPoolSizes(t *testing.T) {
	sizes := map[Class]int{Lowercase: 26, Uppercase: 26, Digit: 10, Symbol: 32}
	for class, want := range sizes {
		if got := len(class.Chars()); got != want {
			t.Errorf("%s pool size = %d, want %d", class, got, want)
		}
	}
}
