package smbclient

import (
	"encoding/hex"
	"fmt"

	"github.com/hirochachacha/go-smb2"
)

// Credentials for an SMB session. Hash, when set, is the hex NTLM hash and
// takes precedence over Password.
type Credentials struct {
	Username string
	Password string
	Domain   string
	Hash     string
}

// GetInitiator builds the NTLM initiator for creds.
func GetInitiator(creds Credentials) (*smb2.NTLMInitiator, error) {
	if creds.Hash != "" {
		hashBytes, err := hex.DecodeString(creds.Hash)
		if err != nil {
			return nil, fmt.Errorf("invalid ntlm hash format: %w", err)
		}
		return &smb2.NTLMInitiator{
			User:   creds.Username,
			Domain: creds.Domain,
			Hash:   hashBytes,
		}, nil
	}

	return &smb2.NTLMInitiator{
		User:     creds.Username,
		Password: creds.Password,
		Domain:   creds.Domain,
	}, nil
}
