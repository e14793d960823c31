package smbclient

import (
	"fmt"
	"net"
	"strings"

	"github.com/hirochachacha/go-smb2"

	"dataextract/pkg/source"
)

type Session struct {
	Session *smb2.Session
	Conn    net.Conn
	shares  []*smb2.Share
}

// NewSession dials host (port 445 unless host carries one) and authenticates.
func NewSession(host string, creds Credentials) (s *Session, err error) {
	conn, err := net.Dial("tcp", address(host))
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in SMB dial: %v", r)
			conn.Close()
		}
	}()

	initiator, err := GetInitiator(creds)
	if err != nil {
		conn.Close()
		return nil, err
	}

	d := &smb2.Dialer{
		Initiator: initiator,
	}

	session, err := d.Dial(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Session{Session: session, Conn: conn}, nil
}

// ListShares returns the share names on the host, without IPC$.
func (s *Session) ListShares() ([]string, error) {
	names, err := s.Session.ListSharenames()
	if err != nil {
		return nil, err
	}
	return visibleShares(names), nil
}

func visibleShares(names []string) []string {
	var shares []string
	for _, n := range names {
		if strings.EqualFold(n, "IPC$") {
			continue
		}
		shares = append(shares, n)
	}
	return shares
}

func (s *Session) Mount(share string) (*smb2.Share, error) {
	sh, err := s.Session.Mount(share)
	if err != nil {
		return nil, err
	}
	s.shares = append(s.shares, sh)
	return sh, nil
}

// FileSystem mounts share and returns it as an extractor source.
func (s *Session) FileSystem(share string) (source.FileSystem, error) {
	sh, err := s.Mount(share)
	if err != nil {
		return nil, fmt.Errorf("failed to mount %s: %w", share, err)
	}
	return &source.SMBFS{Share: sh}, nil
}

func (s *Session) Close() {
	for _, sh := range s.shares {
		sh.Umount()
	}
	s.shares = nil
	if s.Session != nil {
		s.Session.Logoff()
	}
	if s.Conn != nil {
		s.Conn.Close()
	}
}

func address(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(strings.Trim(host, "[]"), "445")
}
