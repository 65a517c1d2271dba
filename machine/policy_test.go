package machine

import "testing"

func TestPolicyUnmarshalText(t *testing.T) {
	overrun := OverrunHalt
	if err := overrun.UnmarshalText([]byte("fatal")); err != nil {
		t.Fatal(err)
	}
	if overrun != OverrunFatal {
		t.Fatalf("got %v", overrun)
	}
	if err := overrun.UnmarshalText([]byte("maybe")); err == nil {
		t.Fatal("should error")
	}
	// unchanged on error
	if overrun != OverrunFatal {
		t.Fatalf("got %v", overrun)
	}

	var advance Advance
	if err := advance.UnmarshalText([]byte("nested")); err != nil {
		t.Fatal(err)
	}
	if advance != AdvanceNested {
		t.Fatalf("got %v", advance)
	}
	if err := advance.UnmarshalText([]byte("sideways")); err == nil {
		t.Fatal("should error")
	}
}
