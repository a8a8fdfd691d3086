package args

import (
	"strings"
	"testing"
)

func TestIsNumber(t *testing.T) {
	valid := []string{"0", "100", "4294967295", "9999999999"}
	for _, s := range valid {
		if !IsNumber(s) {
			t.Errorf("IsNumber(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "-100", "+100", "12abc", "abc", "0x10", "12345678987654321123456789"}
	for _, s := range invalid {
		if IsNumber(s) {
			t.Errorf("IsNumber(%q) = true, want false", s)
		}
	}
}

func TestAsNumber(t *testing.T) {
	cur := New([]string{"0", "100", "-100", "12345678987654321123456789", "12abc", "abc", ""})

	for _, want := range []uint64{0, 100} {
		got, err := cur.AsNumber()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("got %d, want %d", got, want)
		}
	}
	for i := 0; i < 5; i++ {
		if _, err := cur.AsNumber(); err == nil {
			t.Errorf("token %d: expected error", i+2)
		}
	}
}

func TestAsAction(t *testing.T) {
	cur := New([]string{"add", "del", "addd", "ad", ""})

	if a, err := cur.AsAction(); err != nil || a != ActionAdd {
		t.Errorf("got %v, %v", a, err)
	}
	if a, err := cur.AsAction(); err != nil || a != ActionDel {
		t.Errorf("got %v, %v", a, err)
	}
	for i := 0; i < 3; i++ {
		_, err := cur.AsAction()
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "expected one of [add, del]") {
			t.Errorf("message must list candidates: %v", err)
		}
	}
}

func TestAsToggle(t *testing.T) {
	cur := New([]string{"enable", "disable", "enablee", "en", ""})

	if v, err := cur.AsToggle(); err != nil || v != ToggleEnable {
		t.Errorf("got %v, %v", v, err)
	}
	if v, err := cur.AsToggle(); err != nil || v != ToggleDisable {
		t.Errorf("got %v, %v", v, err)
	}
	for i := 0; i < 3; i++ {
		if _, err := cur.AsToggle(); err == nil {
			t.Fatal("expected error")
		}
	}
}

func TestAsMacAddress(t *testing.T) {
	valid := []string{"01:23:45:67:89:ab", "01-23-45-67-89-ab", "DE:AD:BE:EF:00:01"}
	for _, s := range valid {
		cur := New([]string{s})
		mac, err := cur.AsMacAddress()
		if err != nil {
			t.Errorf("%q: %v", s, err)
		}
		if mac != s {
			t.Errorf("got %q, want %q", mac, s)
		}
	}
	invalid := []string{
		"01.23.45-67-89:ab",
		"0123.4567.89ab",
		"qq:22:33:44:55:66",
		"01:23:45:67:89:ab:cd:ef",
		"text",
		"",
	}
	for _, s := range invalid {
		cur := New([]string{s})
		if _, err := cur.AsMacAddress(); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestParseIPCanonical(t *testing.T) {
	cases := []struct {
		in   string
		ver  IpVer
		want string
	}{
		{"127.0.0.1", IPv4, "127.0.0.1"},
		{"2001:0db8:85a3:0000:0000:8a2e:0370:7334", IPv6, "2001:db8:85a3::8a2e:370:7334"},
		{"2001:db8:85a3::8a2e:370:7334", IPv6, "2001:db8:85a3::8a2e:370:7334"},
		{"::", IPv6, "::"},
		{"::1", IPv6, "::1"},
	}
	for _, c := range cases {
		ver, ip, err := ParseIP(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if ver != c.ver || ip != c.want {
			t.Errorf("%q: got (%v, %q), want (%v, %q)", c.in, ver, ip, c.ver, c.want)
		}
		// canonicalization is idempotent
		ver2, ip2, err := ParseIP(ip)
		if err != nil || ver2 != ver || ip2 != ip {
			t.Errorf("%q: re-canonicalization changed the value: (%v, %q), %v", ip, ver2, ip2, err)
		}
	}
}

func TestAsIPAddress(t *testing.T) {
	cur := New([]string{
		"127.0.0.1",
		"127.0.256.1",
		"127.0.0,1",
		"127.0.0",
		"127.0.0.1.2",
		"2001:0db8:85a3:0000:0000:8a2e:0370:7334",
		"::",
		"fe80::1%eth0",
		"text",
		"",
	})

	if ver, ip, err := cur.AsIPAddress(); err != nil || ver != IPv4 || ip != "127.0.0.1" {
		t.Errorf("got (%v, %q), %v", ver, ip, err)
	}
	for i := 0; i < 4; i++ {
		if _, _, err := cur.AsIPAddress(); err == nil {
			t.Fatal("expected error")
		}
	}
	if ver, ip, err := cur.AsIPAddress(); err != nil || ver != IPv6 || ip != "2001:db8:85a3::8a2e:370:7334" {
		t.Errorf("got (%v, %q), %v", ver, ip, err)
	}
	if ver, ip, err := cur.AsIPAddress(); err != nil || ver != IPv6 || ip != "::" {
		t.Errorf("got (%v, %q), %v", ver, ip, err)
	}
	for i := 0; i < 3; i++ {
		_, _, err := cur.AsIPAddress()
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "expected IPv4 or IPv6 address") {
			t.Errorf("unified message expected, got: %v", err)
		}
	}
}

func TestAsIPAddrMask(t *testing.T) {
	type result struct {
		ver    IpVer
		ip     string
		prefix uint8
	}
	cases := []struct {
		in   string
		want *result // nil means error expected
	}{
		{"127.0.0.1/8", &result{IPv4, "127.0.0.1", 8}},
		{"127.0.0.1/0", nil},
		{"127.0.0.1/33", nil},
		{"127.0.256.1/8", nil},
		{"127.0.0.1", &result{IPv4, "127.0.0.1", 24}},
		{"127.0.0.1/", nil},
		{"127.0.0/8", nil},
		{"2001:db8:a::123/64", &result{IPv6, "2001:db8:a::123", 64}},
		{"2001:db8:a::123/65", nil},
		{"2001:db8:a::123", &result{IPv6, "2001:db8:a::123", 64}},
		{"text", nil},
		{"", nil},
	}
	for _, c := range cases {
		cur := New([]string{c.in})
		ver, ip, prefix, err := cur.AsIPAddrMask(DefaultPrefix)
		if c.want == nil {
			if err == nil {
				t.Errorf("%q: expected error, got (%v, %q, %d)", c.in, ver, ip, prefix)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if ver != c.want.ver || ip != c.want.ip || prefix != c.want.prefix {
			t.Errorf("%q: got (%v, %q, %d), want (%v, %q, %d)",
				c.in, ver, ip, prefix, c.want.ver, c.want.ip, c.want.prefix)
		}
	}
}

func TestAsIPAddrMaskRequirePrefix(t *testing.T) {
	cur := New([]string{"10.0.0.1/8", "10.0.0.1", "2001:db8::1"})

	if ver, ip, prefix, err := cur.AsIPAddrMask(RequirePrefix); err != nil ||
		ver != IPv4 || ip != "10.0.0.1" || prefix != 8 {
		t.Errorf("got (%v, %q, %d), %v", ver, ip, prefix, err)
	}
	// bare addresses are rejected under the strict policy
	for i := 0; i < 2; i++ {
		if _, _, _, err := cur.AsIPAddrMask(RequirePrefix); err == nil {
			t.Error("expected error for bare address")
		}
	}
}

func TestIPOrFQDN(t *testing.T) {
	longLabel := strings.Repeat("a", 63)
	name255 := longLabel + "." + longLabel + "." + longLabel + "." + longLabel
	if len(name255) != 255 {
		t.Fatalf("bad test fixture: %d octets", len(name255))
	}

	valid := []string{
		"a.com",
		"foo-bar.com",
		"1.2.3.4.com",
		"xn--e1afmkfd.xn--p1ai",
		"text",
		"123",
		"host.example.com.",
		"UPPER.CasE.Com",
		longLabel + ".com",
		name255,
	}
	for _, s := range valid {
		host, err := IPOrFQDN(s)
		if err != nil {
			t.Errorf("%q: %v", s, err)
		}
		if host != s {
			t.Errorf("%q: host rewritten to %q", s, host)
		}
	}

	invalid := []string{
		"",
		".",
		"-foo-bar.com",
		"foo-bar-.com",
		"foo_bar.com",
		"foo..com",
		"foo.123", // rightmost label of a multi-label name must not start with a digit
		"foo.-bar",
		strings.Repeat("a", 64) + ".com",
		name255 + ".aa",
	}
	for _, s := range invalid {
		if _, err := IPOrFQDN(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}

	// IP literals come back canonicalized
	host, err := IPOrFQDN("2001:0db8::0001")
	if err != nil || host != "2001:db8::1" {
		t.Errorf("got %q, %v", host, err)
	}
}

func TestAsNetInterface(t *testing.T) {
	cur := New([]string{"no-such-interface-0", ""})
	for i := 0; i < 2; i++ {
		if _, err := cur.AsNetInterface(); err == nil {
			t.Error("expected error for unknown interface")
		}
	}
	if _, err := cur.AsNetInterface(); err == nil {
		t.Error("expected error on exhausted cursor")
	}
}

func TestParseAddrAndPort(t *testing.T) {
	cases := []struct {
		in   string
		host string
		port uint16
	}{
		{"10.0.0.1", "10.0.0.1", 514},
		{"logs.example.com", "logs.example.com", 514},
		{"host:530", "host", 530},
		{"10.0.0.1:530", "10.0.0.1", 530},
		{"[2001:db8::1]:530", "2001:db8::1", 530},
		{"2001:db8::1", "2001:db8::1", 514},
		{"[2001:0db8::1]:530", "2001:db8::1", 530},
	}
	for _, c := range cases {
		cur := New([]string{c.in})
		host, port, err := cur.ParseAddrAndPort()
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if host != c.host || port != c.port {
			t.Errorf("%q: got (%q, %d), want (%q, %d)", c.in, host, port, c.host, c.port)
		}
		if err := cur.ExpectEnd(); err != nil {
			t.Errorf("%q: endpoint must consume exactly one token: %v", c.in, err)
		}
	}

	bad := []string{
		"host:0",
		"host:70000",
		"host:",
		"host:12abc",
		"[2001:db8::1]",
		"[2001:db8::1]530",
		":530",
		"_host:530",
	}
	for _, s := range bad {
		cur := New([]string{s})
		if _, _, err := cur.ParseAddrAndPort(); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}

	portErr := func(s string) string {
		cur := New([]string{s})
		_, _, err := cur.ParseAddrAndPort()
		if err == nil {
			t.Fatalf("%q: expected error", s)
		}
		return err.Error()
	}
	for _, s := range []string{"host:0", "host:70000"} {
		if msg := portErr(s); !strings.Contains(msg, "expected an integer in the range 1 - 65535") {
			t.Errorf("%q: got message %q", s, msg)
		}
	}

	if _, _, err := New(nil).ParseAddrAndPort(); err == nil {
		t.Error("empty cursor: expected error")
	}
}
