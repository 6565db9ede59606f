package phoneme

import "testing"

func TestBaseAndStress(t *testing.T) {
	cases := []struct {
		in     Phoneme
		base   string
		stress string
		vowel  bool
	}{
		{"AH0", "AH", "0", true},
		{"EY1", "EY", "1", true},
		{"OY2", "OY", "2", true},
		{"K", "K", "", false},
		{"ZH", "ZH", "", false},
	}
	for _, c := range cases {
		if got := c.in.Base(); got != c.base {
			t.Fatalf("%s Base = %q, want %q", c.in, got, c.base)
		}
		if got := c.in.Stress(); got != c.stress {
			t.Fatalf("%s Stress = %q, want %q", c.in, got, c.stress)
		}
		if got := c.in.IsVowel(); got != c.vowel {
			t.Fatalf("%s IsVowel = %v, want %v", c.in, got, c.vowel)
		}
	}
}

func TestValid(t *testing.T) {
	for _, p := range []Phoneme{"AH0", "EY1", "T", "NG", "DH"} {
		if !p.Valid() {
			t.Fatalf("%s should be valid", p)
		}
	}
	// vowel without stress digit, consonant with one, unknown symbol
	for _, p := range []Phoneme{"AH", "T1", "QQ"} {
		if p.Valid() {
			t.Fatalf("%s should be invalid", p)
		}
	}
}

func TestVoicingPairs(t *testing.T) {
	if !IsVoicingPair("S", "Z") || !IsVoicingPair("Z", "S") {
		t.Fatalf("S/Z should be a voicing pair both ways")
	}
	if v, ok := VoicingPairOf("T"); !ok || v != "D" {
		t.Fatalf("VoicingPairOf(T) = %q, %v, want D, true", v, ok)
	}
	if _, ok := VoicingPairOf("M"); ok {
		t.Fatalf("M has no voicing counterpart")
	}
	if !Phoneme("EY1").EqualBase("EY0") || Phoneme("T").EqualBase("D") {
		t.Fatalf("EqualBase should ignore stress and nothing else")
	}
	if IsVoicingPair("S", "T") {
		t.Fatalf("S/T is not a voicing pair")
	}
	if Devoice("Z") != "S" || Devoice("S") != "S" {
		t.Fatalf("Devoice should pick the voiceless member")
	}
	if Devoice("M") != "M" {
		t.Fatalf("Devoice should pass unpaired consonants through")
	}
}

func TestParseJoinRoundTrip(t *testing.T) {
	in := "JH AH1 M P S"
	ps := ParseSeq(in)
	if len(ps) != 5 {
		t.Fatalf("ParseSeq length = %d, want 5", len(ps))
	}
	if Join(ps) != in {
		t.Fatalf("Join(ParseSeq(%q)) = %q", in, Join(ps))
	}
	if ParseSeq("") != nil {
		t.Fatalf("ParseSeq of empty string should be nil")
	}
}

func TestCountVowels(t *testing.T) {
	if n := CountVowels(ParseSeq("S T EY1 D HH IY1")); n != 2 {
		t.Fatalf("CountVowels = %d, want 2", n)
	}
}

func TestMergeAOAA(t *testing.T) {
	got := MergeAOAA(ParseSeq("D AO1 G"))
	if Join(got) != "D AA1 G" {
		t.Fatalf("merged = %q, want D AA1 G", Join(got))
	}
}

func TestToIPAReducedVowels(t *testing.T) {
	if ToIPA("AH0") != "ə" {
		t.Fatalf("unstressed AH should reduce to schwa")
	}
	if ToIPA("AH1") != "ʌ" {
		t.Fatalf("stressed AH should stay ʌ")
	}
	if ToIPA("ER0") != "ɚ" {
		t.Fatalf("unstressed ER should reduce to ɚ")
	}
}

func TestSeqIPAStressed(t *testing.T) {
	// "jumps": the stress mark lands word-initially before JH
	if got := SeqIPAStressed(ParseSeq("JH AH1 M P S")); got != "ˈdʒʌmps" {
		t.Fatalf("jumps IPA = %q", got)
	}
	// "instead": N D cluster splits, onset is S T
	if got := SeqIPAStressed(ParseSeq("IH0 N S T EH1 D")); got != "ɪnˈstɛd" {
		t.Fatalf("instead IPA = %q", got)
	}
}
