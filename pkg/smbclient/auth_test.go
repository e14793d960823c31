package smbclient

import (
	"bytes"
	"testing"
)

func TestGetInitiator(t *testing.T) {
	t.Run("Password", func(t *testing.T) {
		in, err := GetInitiator(Credentials{Username: "arthur", Password: "towel", Domain: "EARTH"})
		if err != nil {
			t.Fatal(err)
		}
		if in.User != "arthur" || in.Password != "towel" || in.Domain != "EARTH" || in.Hash != nil {
			t.Errorf("unexpected initiator %+v", in)
		}
	})

	t.Run("Hash", func(t *testing.T) {
		in, err := GetInitiator(Credentials{Username: "arthur", Password: "ignored", Hash: "0a0b2a"})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(in.Hash, []byte{0x0a, 0x0b, 0x2a}) {
			t.Errorf("hash = %x", in.Hash)
		}
		if in.Password != "" {
			t.Error("password must not be sent with a hash")
		}
	})

	t.Run("BadHash", func(t *testing.T) {
		if _, err := GetInitiator(Credentials{Hash: "zz"}); err == nil {
			t.Error("expected error for non-hex hash")
		}
	})
}

func TestAddress(t *testing.T) {
	tests := map[string]string{
		"fileserver":      "fileserver:445",
		"10.0.0.5":        "10.0.0.5:445",
		"10.0.0.5:1445":   "10.0.0.5:1445",
		"[fe80::1]":       "[fe80::1]:445",
		"fe80::1":         "[fe80::1]:445",
		"[fe80::1]:10445": "[fe80::1]:10445",
	}
	for in, want := range tests {
		if got := address(in); got != want {
			t.Errorf("address(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestVisibleShares(t *testing.T) {
	got := visibleShares([]string{"ADMIN$", "IPC$", "Library", "ipc$", "C$"})
	want := []string{"ADMIN$", "Library", "C$"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
