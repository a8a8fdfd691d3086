package netconfig

import (
	"testing"

	"github.com/YADRO-KNS/obmc-yadro-netconfig/args"
	"github.com/YADRO-KNS/obmc-yadro-netconfig/option"
)

func TestObjectFromOptional(t *testing.T) {
	opts = option.Default()

	// numeric token selects a VLAN of the default interface
	cur := args.New([]string{"100", "add"})
	object, err := objectFromOptional(cur, "add", "del")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/xyz/openbmc_project/network/eth0_100"; object != want {
		t.Errorf("got %q, want %q", object, want)
	}
	if tok, _ := cur.Peek(); tok != "add" {
		t.Errorf("VLAN id must be consumed, next token is %q", tok)
	}

	// a keyword leaves the default interface and the cursor untouched
	cur = args.New([]string{"add", "1.2.3.4"})
	object, err = objectFromOptional(cur, "add", "del")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/xyz/openbmc_project/network/eth0"; object != want {
		t.Errorf("got %q, want %q", object, want)
	}
	if tok, _ := cur.Peek(); tok != "add" {
		t.Errorf("keyword must not be consumed, next token is %q", tok)
	}

	// exhausted cursor falls back to the default interface
	object, err = objectFromOptional(args.New(nil), "add", "del")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/xyz/openbmc_project/network/eth0"; object != want {
		t.Errorf("got %q, want %q", object, want)
	}

	// anything else must name a live interface
	cur = args.New([]string{"no-such-interface-0", "add"})
	if _, err := objectFromOptional(cur, "add", "del"); err == nil {
		t.Error("expected error for unknown interface")
	}
}
