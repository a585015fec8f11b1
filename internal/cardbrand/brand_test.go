package cardbrand

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		number string
		want   Brand
	}{
		{"4111111111111111", Visa},
		{"4222222222222", Visa}, // 13-digit visa
		{"5500005555555559", MasterCard},
		{"5105105105105100", MasterCard},
		{"378282246310005", Amex},
		{"371449635398431", Amex},
		{"6011111111111117", Discover},
		{"6511111111111119", Discover},
		{"1234567890123456", Unknown},
		{"", Unknown},
		{"41111111111111111111", Unknown}, // too long
		{"4111-1111-1111-1111", Unknown},  // separators are not stripped
	}
	for _, c := range cases {
		if got := Detect(c.number); got != c.want {
			t.Fatalf("Detect(%q) got %q want %q", c.number, got, c.want)
		}
	}
}

func TestCVVLength(t *testing.T) {
	if got := CVVLength(Amex); got != 4 {
		t.Fatalf("CVVLength(Amex) got %d want 4", got)
	}
	for _, b := range []Brand{Visa, MasterCard, Discover, Unknown} {
		if got := CVVLength(b); got != 3 {
			t.Fatalf("CVVLength(%q) got %d want 3", b, got)
		}
	}
}

func TestIsDigits(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"0123456789", true}, {"4", true},
		{"", false}, {"12a", false}, {" 12", false},
	}
	for _, c := range cases {
		if got := IsDigits(c.in); got != c.ok {
			t.Fatalf("IsDigits(%q) got %v want %v", c.in, got, c.ok)
		}
	}
}

func TestLastN(t *testing.T) {
	if got := LastN("4111111111111111", 4); got != "1111" {
		t.Fatalf("LastN got %s want 1111", got)
	}
	if got := LastN("42", 4); got != "42" {
		t.Fatalf("LastN short got %s want 42", got)
	}
}

func TestMask(t *testing.T) {
	cases := []struct{ in, want string }{
		{"4111111111111111", "411111******1111"},
		{"378282246310005", "378282*****0005"},
		{"12345678", "****5678"},
		{"1234", "****"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Mask(c.in); got != c.want {
			t.Fatalf("Mask(%q) got %q want %q", c.in, got, c.want)
		}
	}
}
