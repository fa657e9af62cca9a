package profile

import "testing"

// acceptAll feeds a full set of valid inputs, counting accepted turns.
func acceptAll(t *testing.T, c *Collector, inputs []string) int {
	t.Helper()
	accepted := 0
	for _, in := range inputs {
		out := c.Submit(in)
		if out.Accepted {
			accepted++
		}
	}
	return accepted
}

var validInputs = []string{
	"Ada Lovelace",
	"ada@example.com",
	"+44 20 7946 0958",
	"2.5 years",
	"Backend Engineer",
	"London, UK",
	"Python, Django, Docker",
}

func TestCollector_CompletesInExactlyLenFieldsTurns(t *testing.T) {
	c := NewCollector()

	accepted := acceptAll(t, c, validInputs)
	if accepted != len(RequiredFields) {
		t.Fatalf("accepted %d turns, want %d", accepted, len(RequiredFields))
	}
	if !c.Done() {
		t.Fatal("collector not done after all fields accepted")
	}
}

func TestCollector_CorrectiveRepromptsDontAdvance(t *testing.T) {
	c := NewCollector()
	c.Submit("Ada Lovelace")

	// Three bad emails in a row: the cursor must not move.
	for i := 0; i < 3; i++ {
		out := c.Submit("not-an-email")
		if out.Accepted {
			t.Fatal("invalid email accepted")
		}
		if out.Corrective == "" {
			t.Fatal("no corrective prompt emitted")
		}
		if c.Current() != FieldEmail {
			t.Fatalf("cursor moved to %s after invalid input", c.Current())
		}
	}

	out := c.Submit("ada@example.com")
	if !out.Accepted {
		t.Fatal("valid email rejected")
	}
	if c.Current() != FieldPhone {
		t.Fatalf("cursor at %s, want phone", c.Current())
	}
}

func TestCollector_NormalizesPhone(t *testing.T) {
	c := NewCollector()
	c.Submit("Ada Lovelace")
	c.Submit("ada@example.com")

	out := c.Submit("Phone: +44 20-7946-0958")
	if !out.Accepted {
		t.Fatal("valid phone rejected")
	}
	if got := c.Profile().Phone; got != "+442079460958" {
		t.Fatalf("phone = %q", got)
	}
}

func TestCollector_RejectsShortPhone(t *testing.T) {
	c := NewCollector()
	c.Submit("Ada Lovelace")
	c.Submit("ada@example.com")

	out := c.Submit("12345")
	if out.Accepted {
		t.Fatal("7-digit phone accepted")
	}
}

func TestCollector_EmptyTechStackReasked(t *testing.T) {
	c := NewCollector()
	for _, in := range validInputs[:6] {
		c.Submit(in)
	}

	out := c.Submit("   ")
	if out.Accepted || c.Done() {
		t.Fatal("empty tech stack accepted")
	}

	out = c.Submit("Python")
	if !out.Accepted || !out.Done {
		t.Fatal("valid tech stack rejected")
	}
}

func TestParseYears(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2.5 years", 3, true},
		{"1", 1, true},
		{"3 yrs", 3, true},
		{"Years: 10", 10, true},
		{"99", 40, true}, // clamped
		{"none", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseYears(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseYears(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSeniority(t *testing.T) {
	cases := []struct {
		years int
		want  string
	}{
		{0, SeniorityJunior},
		{1, SeniorityJunior},
		{2, SeniorityMid},
		{3, SeniorityMid},
		{5, SeniorityMid},
		{6, SenioritySenior},
		{20, SenioritySenior},
	}
	for _, tc := range cases {
		if got := Seniority(tc.years); got != tc.want {
			t.Errorf("Seniority(%d) = %s, want %s", tc.years, got, tc.want)
		}
	}
}

func TestStripLabelPrefix(t *testing.T) {
	if got := StripLabelPrefix("Email: me@example.com"); got != "me@example.com" {
		t.Fatalf("got %q", got)
	}
	if got := StripLabelPrefix("  plain text  "); got != "plain text" {
		t.Fatalf("got %q", got)
	}
}

func TestProfile_FirstName(t *testing.T) {
	p := Profile{FullName: "Ada Lovelace"}
	if got := p.FirstName(); got != "Ada" {
		t.Fatalf("got %q", got)
	}
	if got := (Profile{}).FirstName(); got != "" {
		t.Fatalf("got %q", got)
	}
}
